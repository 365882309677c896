package breach

type Severity string

const (
	SeverityNone          Severity = "NONE"
	SeverityMinimal       Severity = "MINIMAL (<100 occurrences)"
	SeverityLow           Severity = "LOW (100+ occurrences)"
	SeverityModerate      Severity = "MODERATE (1K+ occurrences)"
	SeverityHigh          Severity = "HIGH (10K+ occurrences)"
	SeverityVeryHigh      Severity = "VERY HIGH (100K+ occurrences)"
	SeverityExtremelyHigh Severity = "EXTREMELY HIGH (1M+ occurrences)"
)

func (i BreachInfo) Severity() Severity {
	if !i.IsPwned {
		return SeverityNone
	}

	switch count := i.OccurrenceCount; {
	case count >= 1000000:
		return SeverityExtremelyHigh
	case count >= 100000:
		return SeverityVeryHigh
	case count >= 10000:
		return SeverityHigh
	case count >= 1000:
		return SeverityModerate
	case count >= 100:
		return SeverityLow
	default:
		return SeverityMinimal
	}
}
