package post

import (
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lysyi3m/post-comb/app/config"
)

type Rule string

const (
	RuleReply    Rule = "reply"
	RuleRetweet  Rule = "retweet"
	RuleTooShort Rule = "too_short"
	RuleLongForm Rule = "long_form"
	RuleViral    Rule = "viral"
	RuleKeyword  Rule = "keyword"
	RuleNoMatch  Rule = "no_match"
)

// Decision is the outcome of evaluating one post
type Decision struct {
	Keep       bool
	Rule       Rule
	Categories []string
}

// Stats counts decisions by the rule that produced them
type Stats map[Rule]int

type keyword struct {
	term       string
	categories []string
}

// Filterer decides which posts are meaningful. It is immutable after construction.
type Filterer struct {
	thresholds config.Thresholds
	keywords   []keyword
	categories []string
}

func NewFilterer(rules *config.Rules) *Filterer {
	f := &Filterer{thresholds: rules.Thresholds}

	index := make(map[string]int)
	seenCategory := make(map[string]bool)
	for _, group := range rules.Keywords {
		category := strings.ToLower(strings.TrimSpace(group.Category))
		if !seenCategory[category] {
			seenCategory[category] = true
			f.categories = append(f.categories, category)
		}

		for _, term := range group.Terms {
			term = lower(term)
			if i, ok := index[term]; ok {
				if !slices.Contains(f.keywords[i].categories, category) {
					f.keywords[i].categories = append(f.keywords[i].categories, category)
				}
				continue
			}
			index[term] = len(f.keywords)
			f.keywords = append(f.keywords, keyword{term: term, categories: []string{category}})
		}
	}

	return f
}

// Run keeps the meaningful posts, in input order, projected to SelectedPost
func (f *Filterer) Run(posts []Post) ([]SelectedPost, Stats) {
	selected := make([]SelectedPost, 0, len(posts))
	stats := make(Stats)

	for _, p := range posts {
		decision := f.Evaluate(p)
		stats[decision.Rule]++

		if !decision.Keep {
			slog.Debug("Post dropped", "id", p.ID.String(), "rule", string(decision.Rule))
			continue
		}

		s := Select(p)
		s.Categories = decision.Categories
		selected = append(selected, s)
	}

	return selected, stats
}

// Keep reports whether a post is meaningful
func (f *Filterer) Keep(p Post) bool {
	return f.Evaluate(p).Keep
}

// Evaluate applies the rules in order; the first one that fires decides.
func (f *Filterer) Evaluate(p Post) Decision {
	t := f.thresholds
	text := lower(p.Text)
	length := utf8.RuneCountInString(text)

	if strings.HasPrefix(text, "@") && length < t.ReplyMinLength {
		return Decision{Rule: RuleReply}
	}

	if strings.HasPrefix(text, "rt @") {
		return Decision{Rule: RuleRetweet}
	}

	if length < t.MinLength {
		return Decision{Rule: RuleTooShort}
	}

	if length > t.LongFormLength {
		return Decision{Keep: true, Rule: RuleLongForm, Categories: f.matchCategories(text)}
	}

	likes := p.Metrics.LikeCount
	retweets := p.Metrics.RetweetCount

	if likes > t.ViralLikes || retweets > t.ViralRetweets {
		return Decision{Keep: true, Rule: RuleViral, Categories: f.matchCategories(text)}
	}

	categories := f.matchCategories(text)
	if len(categories) > 0 &&
		(likes > t.KeywordLikes || retweets > t.KeywordRetweets || length > t.KeywordLength) {
		return Decision{Keep: true, Rule: RuleKeyword, Categories: categories}
	}

	return Decision{Rule: RuleNoMatch}
}

// Categories returns the configured keyword categories in order
func (f *Filterer) Categories() []string {
	return append([]string(nil), f.categories...)
}

// matchCategories returns the categories of every keyword found in text,
// ordered as configured. Matching is plain substring search on lower-cased text.
func (f *Filterer) matchCategories(text string) []string {
	found := make(map[string]bool)
	for _, kw := range f.keywords {
		if strings.Contains(text, kw.term) {
			for _, c := range kw.categories {
				found[c] = true
			}
		}
	}

	if len(found) == 0 {
		return nil
	}

	categories := make([]string, 0, len(found))
	for _, c := range f.categories {
		if found[c] {
			categories = append(categories, c)
		}
	}
	return categories
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
