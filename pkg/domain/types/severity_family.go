package types

// SeverityFamily identifies the distribution family used for loss severity
type SeverityFamily string

const (
	// SeverityLognormal is a lognormal severity distribution
	SeverityLognormal SeverityFamily = "lognormal"
	// SeverityPareto is a Pareto (Type I) severity distribution
	SeverityPareto SeverityFamily = "pareto"
)

// String returns the string representation
func (f SeverityFamily) String() string {
	return string(f)
}

// IsValid checks if the severity family is a known value
func (f SeverityFamily) IsValid() bool {
	switch f {
	case SeverityLognormal, SeverityPareto:
		return true
	}
	return false
}

// AllSeverityFamilies returns all known severity families
func AllSeverityFamilies() []SeverityFamily {
	return []SeverityFamily{SeverityLognormal, SeverityPareto}
}
