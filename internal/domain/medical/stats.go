package medical

import "fmt"

// Stats counts node and edge touches made by one ingestion run. A name seen
// twice is counted twice; the counters are not distinct-node counts.
type Stats struct {
	Diseases             int `json:"diseases"`
	Symptoms             int `json:"symptoms"`
	Treatments           int `json:"treatments"`
	Causes               int `json:"causes"`
	LifestyleFactors     int `json:"lifestyle_factors"`
	EnvironmentalFactors int `json:"environmental_factors"`
	Relationships        int `json:"relationships"`
}

// AddLink records one related node plus its edge from a Disease.
func (s *Stats) AddLink(label Label) {
	switch label {
	case LabelSymptom:
		s.Symptoms++
	case LabelTreatment:
		s.Treatments++
	case LabelCause:
		s.Causes++
	case LabelLifestyleFactor:
		s.LifestyleFactors++
	case LabelEnvironmentalFactor:
		s.EnvironmentalFactors++
	default:
		return
	}
	s.Relationships++
}

func (s Stats) IsZero() bool {
	return s == Stats{}
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"diseases=%d symptoms=%d treatments=%d causes=%d lifestyle_factors=%d environmental_factors=%d relationships=%d",
		s.Diseases, s.Symptoms, s.Treatments, s.Causes, s.LifestyleFactors, s.EnvironmentalFactors, s.Relationships,
	)
}
