// Package strength scores candidate passwords. It performs no I/O and keeps
// no mutable state, so it is safe to call from any goroutine.
package strength

import (
	"unicode/utf8"

	"github.com/pivotal-cf/pw-alert/patterns"
)

type Result struct {
	Score                int      `json:"score"`
	Category             Category `json:"category"`
	Length               int      `json:"length"`
	CharacterClassCount  int      `json:"character_class_count"`
	EntropyBits          float64  `json:"entropy_bits"`
	HasCommonPatterns    bool     `json:"has_common_patterns"`
	DetectedPatternNames []string `json:"detected_patterns"`
	InWeakDictionary     bool     `json:"in_weak_dictionary"`
	Breached             bool     `json:"breached"`
	Recommendations      []string `json:"recommendations"`
}

// Factors returns the inputs the result's score was computed from.
func (r Result) Factors() Factors {
	return Factors{
		Length:              r.Length,
		CharacterClassCount: r.CharacterClassCount,
		EntropyBits:         r.EntropyBits,
		HasCommonPatterns:   r.HasCommonPatterns,
		InWeakDictionary:    r.InWeakDictionary,
		Breached:            r.Breached,
	}
}

var detector = patterns.NewDefaultDetector()

// NotAnalyzedResult is returned for the empty candidate.
func NotAnalyzedResult() Result {
	return Result{
		Category:             NotAnalyzed,
		DetectedPatternNames: []string{},
		Recommendations:      []string{},
	}
}

func Analyze(candidate string) Result {
	return analyze(candidate, false)
}

// AnalyzeWithBreach folds a breach flag obtained from a separate lookup into
// the score and recommendations.
func AnalyzeWithBreach(candidate string, breached bool) Result {
	return analyze(candidate, breached)
}

func analyze(candidate string, breached bool) Result {
	if candidate == "" {
		return NotAnalyzedResult()
	}

	names := patterns.Names(detector.Detect(candidate))

	factors := Factors{
		Length:              utf8.RuneCountInString(candidate),
		CharacterClassCount: Classify(candidate).Count(),
		EntropyBits:         EstimateEntropy(candidate),
		HasCommonPatterns:   len(names) > 0,
		InWeakDictionary:    IsWeakPassword(candidate),
		Breached:            breached,
	}

	score := Score(factors)

	return Result{
		Score:                score,
		Category:             CategoryForScore(score),
		Length:               factors.Length,
		CharacterClassCount:  factors.CharacterClassCount,
		EntropyBits:          factors.EntropyBits,
		HasCommonPatterns:    factors.HasCommonPatterns,
		DetectedPatternNames: names,
		InWeakDictionary:     factors.InWeakDictionary,
		Breached:             factors.Breached,
		Recommendations:      Recommendations(factors),
	}
}
