package config

// Rules represents a complete selection rules file
type Rules struct {
	Thresholds Thresholds     `yaml:"thresholds"`
	Document   Document       `yaml:"document"`
	Keywords   []KeywordGroup `yaml:"keywords"`
}

// Thresholds holds the numeric limits used by the meaningful-post predicate.
// Lengths are counted in characters of the lower-cased text.
type Thresholds struct {
	ReplyMinLength  int   `yaml:"reply_min_length"`
	MinLength       int   `yaml:"min_length"`
	LongFormLength  int   `yaml:"long_form_length"`
	ViralLikes      int64 `yaml:"viral_likes"`
	ViralRetweets   int64 `yaml:"viral_retweets"`
	KeywordLikes    int64 `yaml:"keyword_likes"`
	KeywordRetweets int64 `yaml:"keyword_retweets"`
	KeywordLength   int   `yaml:"keyword_length"`
}

// Document contains the Markdown document settings
type Document struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Limit    int    `yaml:"limit"`
}

// KeywordGroup is a named category of topical terms
type KeywordGroup struct {
	Category string   `yaml:"category"`
	Terms    []string `yaml:"terms"`
}
