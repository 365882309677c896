package strength

// Factors are everything a score is computed from.
type Factors struct {
	Length              int
	CharacterClassCount int
	EntropyBits         float64
	HasCommonPatterns   bool
	InWeakDictionary    bool
	Breached            bool
}

const (
	commonPatternPenalty  = 10
	weakDictionaryPenalty = 15
	breachedPenalty       = 25
	exceptionalBonus      = 10
)

// Score composes length, diversity and entropy points, the exceptional
// bonus and the penalties, clamped to [0, 100].
func Score(f Factors) int {
	score := lengthPoints(f.Length) +
		diversityPoints(f.CharacterClassCount) +
		entropyPoints(f.EntropyBits)

	if f.Length >= 16 && f.CharacterClassCount == 4 && f.EntropyBits >= 60 &&
		!f.HasCommonPatterns && !f.InWeakDictionary {
		score += exceptionalBonus
	}

	if f.HasCommonPatterns {
		score -= commonPatternPenalty
	}
	if f.InWeakDictionary {
		score -= weakDictionaryPenalty
	}
	if f.Breached {
		score -= breachedPenalty
	}

	return clamp(score, 0, 100)
}

func lengthPoints(length int) int {
	switch {
	case length >= 16:
		return 35
	case length >= 12:
		return 30
	case length >= 8:
		return 20
	case length >= 6:
		return 10
	default:
		return 0
	}
}

// 7.5 points per class, truncated: 0, 7, 15, 22, 30.
func diversityPoints(classCount int) int {
	return int(float64(classCount) * 7.5)
}

func entropyPoints(bits float64) int {
	switch {
	case bits >= 80:
		return 35
	case bits >= 60:
		return 30
	case bits >= 40:
		return 25
	case bits >= 30:
		return 20
	case bits >= 20:
		return 15
	case bits >= 10:
		return 10
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
