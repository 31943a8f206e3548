package services

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultFuzzyThreshold is the partial-ratio score a skill must exceed to match.
const DefaultFuzzyThreshold = 85

// FuzzyScorer returns a 0-100 similarity between two strings.
type FuzzyScorer func(a, b string) int

// HardMatchResult holds the keyword score and the required skills the
// resume lacks, in job description order.
type HardMatchResult struct {
	Score          float64
	RequiredSkills []string
	ResumeSkills   []string
	MissingSkills  []string
}

type HardMatcher interface {
	Match(resumeText, jdText string) HardMatchResult
}

type vocabularyTerm struct {
	term    string
	pattern *regexp.Regexp
}

type hardMatcher struct {
	terms     []vocabularyTerm
	threshold int
	scorer    FuzzyScorer
}

type HardMatcherOption func(*hardMatcher)

func WithFuzzyThreshold(threshold int) HardMatcherOption {
	return func(m *hardMatcher) { m.threshold = threshold }
}

func WithFuzzyScorer(scorer FuzzyScorer) HardMatcherOption {
	return func(m *hardMatcher) {
		if scorer != nil {
			m.scorer = scorer
		}
	}
}

func NewHardMatcher(vocabulary []string, opts ...HardMatcherOption) HardMatcher {
	m := &hardMatcher{
		threshold: DefaultFuzzyThreshold,
		scorer:    fuzzy.PartialRatio,
	}

	for _, raw := range vocabulary {
		term := strings.ToLower(strings.TrimSpace(raw))
		if term == "" {
			continue
		}
		m.terms = append(m.terms, vocabularyTerm{
			term:    term,
			pattern: regexp.MustCompile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(term) + `($|[^\p{L}\p{N}])`),
		})
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match scores matched/required*100. With no vocabulary term in the job
// description the score is 0 and nothing is reported missing.
func (m *hardMatcher) Match(resumeText, jdText string) HardMatchResult {
	required := m.findTerms(strings.ToLower(jdText))
	found := m.findTerms(strings.ToLower(resumeText))

	if len(required) == 0 {
		return HardMatchResult{Score: 0, RequiredSkills: []string{}, ResumeSkills: found, MissingSkills: []string{}}
	}

	matched := 0
	missing := []string{}
	for _, skill := range required {
		if m.hasMatch(skill, found) {
			matched++
			continue
		}
		missing = append(missing, skill)
	}

	return HardMatchResult{
		Score:          float64(matched) / float64(len(required)) * 100,
		RequiredSkills: required,
		ResumeSkills:   found,
		MissingSkills:  missing,
	}
}

func (m *hardMatcher) hasMatch(skill string, candidates []string) bool {
	for _, candidate := range candidates {
		if m.scorer(skill, candidate) > m.threshold {
			return true
		}
	}
	return false
}

// findTerms returns vocabulary terms present in text as whole words, in
// vocabulary order.
func (m *hardMatcher) findTerms(text string) []string {
	found := []string{}
	for _, t := range m.terms {
		if strings.Contains(text, t.term) && t.pattern.MatchString(text) {
			found = append(found, t.term)
		}
	}
	return found
}
