package strength

type Category string

const (
	NotAnalyzed Category = "Not Analyzed"
	Weak        Category = "Weak"
	Medium      Category = "Medium"
	Strong      Category = "Strong"
)

func CategoryForScore(score int) Category {
	switch {
	case score >= 70:
		return Strong
	case score >= 40:
		return Medium
	default:
		return Weak
	}
}
