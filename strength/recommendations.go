package strength

const (
	UseMinimumLength     = "Use at least 8 characters"
	MixCharacterTypes    = "Use a mix of letters, numbers, and symbols"
	AvoidCommonPatterns  = "Avoid common patterns and sequences"
	ChooseUniquePassword = "Choose a more unique password"
	ConsiderLonger       = "Consider using 12+ characters for better security"
	UseMaximumLength     = "Use 16+ characters for maximum score (35 points)"
	UseAllCharacterTypes = "Use all character types (lowercase, uppercase, digits, symbols) for maximum variety"
	ChangeBreached       = "CRITICAL: This password has been found in data breaches - CHANGE IMMEDIATELY!"
	MeetsAllCriteria     = "Excellent! This password meets all criteria for maximum security"
)

// Recommendations are appended in a fixed order. The final positive message
// requires the negation of every warning before it.
func Recommendations(f Factors) []string {
	recommendations := []string{}

	add := func(condition bool, message string) {
		if condition {
			recommendations = append(recommendations, message)
		}
	}

	add(f.Length < 8, UseMinimumLength)
	add(f.CharacterClassCount < 3, MixCharacterTypes)
	add(f.HasCommonPatterns, AvoidCommonPatterns)
	add(f.InWeakDictionary, ChooseUniquePassword)
	add(f.Length < 12, ConsiderLonger)
	add(f.Length < 16, UseMaximumLength)
	add(f.CharacterClassCount < 4, UseAllCharacterTypes)
	add(f.Breached, ChangeBreached)
	add(f.Length >= 16 && f.CharacterClassCount == 4 &&
		!f.HasCommonPatterns && !f.InWeakDictionary && !f.Breached, MeetsAllCriteria)

	return recommendations
}
