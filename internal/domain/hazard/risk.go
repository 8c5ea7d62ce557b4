package hazard

// RiskLevel is the assessed risk band of a hazard.
type RiskLevel string

const (
	RiskNotAssessed RiskLevel = "Not assessed"
	RiskLow         RiskLevel = "Low"
	RiskMedium      RiskLevel = "Medium"
	RiskHigh        RiskLevel = "High"
	RiskExtreme     RiskLevel = "Extreme"
)

// RiskLevels lists the assessable bands, lowest first.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskExtreme}

// LikelihoodLabels and SeverityLabels are the 1-5 scale wordings shown to
// assessors.
var (
	LikelihoodLabels = map[int]string{
		1: "1 – Rare",
		2: "2 – Unlikely",
		3: "3 – Possible",
		4: "4 – Likely",
		5: "5 – Almost certain",
	}
	SeverityLabels = map[int]string{
		1: "1 – Negligible",
		2: "2 – Minor",
		3: "3 – Moderate",
		4: "4 – Major",
		5: "5 – Catastrophic",
	}
)

// ScoreAndLevel maps likelihood and severity onto the 5x5 risk matrix.
// Inputs outside [1,5] return (0, RiskNotAssessed): that is the "no rating
// yet" sentinel, not an error. Band boundaries are inclusive and fixed:
// Low 1-6, Medium 7-12, High 13-20, Extreme 21-25.
func ScoreAndLevel(likelihood, severity int) (int, RiskLevel) {
	if likelihood < 1 || likelihood > 5 || severity < 1 || severity > 5 {
		return 0, RiskNotAssessed
	}

	score := likelihood * severity
	switch {
	case score <= 6:
		return score, RiskLow
	case score <= 12:
		return score, RiskMedium
	case score <= 20:
		return score, RiskHigh
	default:
		return score, RiskExtreme
	}
}

// ParseRiskLevel resolves risk level text to a RiskLevel.
func ParseRiskLevel(raw string) (RiskLevel, error) {
	for _, level := range RiskLevels {
		if string(level) == raw {
			return level, nil
		}
	}
	if raw == string(RiskNotAssessed) {
		return RiskNotAssessed, nil
	}
	return "", ErrUnknownRiskLevel
}
