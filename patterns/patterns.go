package patterns

import (
	"github.com/pivotal-cf/pw-alert/patterns/matchers"
)

const (
	SequentialNumbers  = "Sequential numbers"
	SequentialLetters  = "Sequential letters"
	KeyboardPattern    = "Keyboard pattern"
	RepeatedCharacters = "Repeated characters"
)

var sequentialNumberTokens = []string{"1234", "5678", "9876", "4321"}
var sequentialLetterTokens = []string{"abcd", "dcba"}
var keyboardTokens = []string{
	"qwerty", "asdf", "zxcv",
	"asdfgh", "zxcvbn", "qwertyuiop", "asdfghjkl", "zxcvbnm",
}

const repeatedRunLength = 3

// Rule is a named matcher. A Detector reports each rule at most once.
type Rule struct {
	Name    string
	Matcher matchers.Matcher
}

// Finding names a rule that matched.
type Finding struct {
	Rule string
}

type Detector interface {
	Detect(candidate string) []Finding
}

type detector struct {
	rules []Rule
}

func NewDetector(rules ...Rule) Detector {
	return &detector{
		rules: rules,
	}
}

// NewDefaultDetector checks the sequential and keyboard tokens against the
// lowercased candidate and the repeated-character run against the candidate
// as given.
func NewDefaultDetector() Detector {
	return NewDetector(
		Rule{
			Name:    SequentialNumbers,
			Matcher: matchers.Downcased(matchers.SubstringMulti(sequentialNumberTokens...)),
		},
		Rule{
			Name:    SequentialLetters,
			Matcher: matchers.Downcased(matchers.SubstringMulti(sequentialLetterTokens...)),
		},
		Rule{
			Name:    KeyboardPattern,
			Matcher: matchers.Downcased(matchers.SubstringMulti(keyboardTokens...)),
		},
		Rule{
			Name:    RepeatedCharacters,
			Matcher: matchers.Repeated(repeatedRunLength),
		},
	)
}

func (d *detector) Detect(candidate string) []Finding {
	line := []byte(candidate)
	findings := []Finding{}
	seen := map[string]bool{}

	for _, rule := range d.rules {
		if seen[rule.Name] {
			continue
		}

		if match, _, _ := rule.Matcher.Match(line); match {
			seen[rule.Name] = true
			findings = append(findings, Finding{Rule: rule.Name})
		}
	}

	return findings
}

// Names returns the rule names of the findings, in order.
func Names(findings []Finding) []string {
	names := make([]string, 0, len(findings))
	for _, f := range findings {
		names = append(names, f.Rule)
	}

	return names
}
