package config

const (
	DefaultDocumentTitle    = "Naval Ravikant - 精选智慧语录"
	DefaultDocumentSubtitle = "精选自Naval Twitter的创业、人生、财富、品德相关高质量内容"
	DefaultDocumentLimit    = 200
)

// Default returns the built-in selection rules
func Default() *Rules {
	return &Rules{
		Thresholds: defaultThresholds(),
		Document: Document{
			Title:    DefaultDocumentTitle,
			Subtitle: DefaultDocumentSubtitle,
			Limit:    DefaultDocumentLimit,
		},
		Keywords: defaultKeywords(),
	}
}

func defaultThresholds() Thresholds {
	return Thresholds{
		ReplyMinLength:  150,
		MinLength:       50,
		LongFormLength:  500,
		ViralLikes:      5000,
		ViralRetweets:   500,
		KeywordLikes:    500,
		KeywordRetweets: 50,
		KeywordLength:   100,
	}
}

// Order and duplicates follow the curated list as it was first written;
// duplicates are dropped when the filterer is built.
func defaultKeywords() []KeywordGroup {
	return []KeywordGroup{
		{
			Category: "entrepreneurship",
			Terms: []string{
				"startup", "founder", "entrepreneur", "company", "business", "product",
				"investor", "investing", "investment", "venture", "capital", "equity",
				"market", "customer", "scale", "growth", "revenue", "profit",
				"recruiting", "hiring", "team", "employee", "talent",
			},
		},
		{
			Category: "wealth",
			Terms: []string{
				"wealth", "money", "rich", "income", "asset", "leverage", "ownership",
				"financial", "freedom", "compound", "passive", "equity",
				"specific knowledge", "leverage", "accountability",
			},
		},
		{
			Category: "life",
			Terms: []string{
				"happiness", "happy", "meaning", "purpose", "life", "wisdom",
				"truth", "honest", "integrity", "authentic", "peace", "calm",
				"mindful", "meditation", "awareness", "consciousness",
				"decision", "choice", "priority", "focus", "intention",
				"time", "energy", "attention", "habit", "discipline",
			},
		},
		{
			Category: "virtue",
			Terms: []string{
				"virtue", "character", "ethics", "moral", "trust", "reputation",
				"humble", "curious", "patient", "courage", "honest", "kind",
				"generous", "grateful", "forgive", "empathy", "compassion",
			},
		},
		{
			Category: "learning",
			Terms: []string{
				"learn", "read", "book", "knowledge", "understand", "think",
				"education", "skill", "master", "practice", "improve", "grow",
			},
		},
		{
			Category: "philosophy",
			Terms: []string{
				"philosophy", "stoic", "buddhism", "zen", "tao", "nature",
				"reality", "illusion", "ego", "desire", "suffering", "attachment",
			},
		},
	}
}
