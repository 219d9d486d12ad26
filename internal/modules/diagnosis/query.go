package diagnosis

import "strings"

// SymptomReport is the structured payload a caller submits for analysis.
type SymptomReport struct {
	Symptoms             string   `json:"symptoms"`
	Duration             string   `json:"duration,omitempty"`
	Severity             string   `json:"severity,omitempty"`
	AgeGroup             string   `json:"age_group,omitempty"`
	LifestyleFactors     []string `json:"lifestyle_factors,omitempty"`
	EnvironmentalContext []string `json:"environmental_context,omitempty"`
}

const segmentSep = ". "

// BuildQuery renders the report as the prompt handed to the reasoner.
// Segment order is fixed and empty optional fields are left out.
func BuildQuery(r SymptomReport) string {
	parts := make([]string, 0, 6)
	parts = append(parts, "Patient symptoms: "+r.Symptoms)
	if r.Duration != "" {
		parts = append(parts, "Duration: "+r.Duration)
	}
	if r.Severity != "" {
		parts = append(parts, "Severity: "+r.Severity)
	}
	if r.AgeGroup != "" {
		parts = append(parts, "Age group: "+r.AgeGroup)
	}
	if len(r.LifestyleFactors) > 0 {
		parts = append(parts, "Lifestyle factors: "+strings.Join(r.LifestyleFactors, ", "))
	}
	if len(r.EnvironmentalContext) > 0 {
		parts = append(parts, "Environmental context: "+strings.Join(r.EnvironmentalContext, ", "))
	}
	return strings.Join(parts, segmentSep)
}

// Normalize returns a copy with nil lists replaced by empty ones, the shape
// echoed back to API callers.
func (r SymptomReport) Normalize() SymptomReport {
	if r.LifestyleFactors == nil {
		r.LifestyleFactors = []string{}
	}
	if r.EnvironmentalContext == nil {
		r.EnvironmentalContext = []string{}
	}
	return r
}
