package strength

import (
	"math"
	"unicode/utf8"
)

const allClassesBonus = 1.1

// EstimateEntropy is a heuristic bit-strength figure, not a cryptographic
// entropy measure. It multiplies the empirical Shannon entropy of the
// candidate's own character distribution by its length, adds 10% when all
// four character classes are present, and caps the result at
// log2(charset size) * length.
func EstimateEntropy(candidate string) float64 {
	length := utf8.RuneCountInString(candidate)
	if length == 0 {
		return 0
	}

	// Summed in first-occurrence order so repeated calls are bit-identical.
	var order []rune
	frequencies := map[rune]int{}
	for _, r := range candidate {
		if frequencies[r] == 0 {
			order = append(order, r)
		}
		frequencies[r]++
	}

	perSymbol := 0.0
	for _, r := range order {
		p := float64(frequencies[r]) / float64(length)
		perSymbol -= p * math.Log2(p)
	}

	classes := Classify(candidate)

	empirical := perSymbol * float64(length)
	if classes.Count() == 4 {
		empirical *= allClassesBonus
	}

	ceiling := math.Log2(float64(classes.CharsetSize())) * float64(length)

	return math.Min(empirical, ceiling)
}
