package medical

// UnknownDisease names a record that carries no disease field.
const UnknownDisease = "Unknown Disease"

type Label string

const (
	LabelDisease             Label = "Disease"
	LabelSymptom             Label = "Symptom"
	LabelTreatment           Label = "Treatment"
	LabelCause               Label = "Cause"
	LabelLifestyleFactor     Label = "LifestyleFactor"
	LabelEnvironmentalFactor Label = "EnvironmentalFactor"
)

// Labels lists every node label in the graph.
var Labels = []Label{
	LabelDisease,
	LabelSymptom,
	LabelTreatment,
	LabelCause,
	LabelLifestyleFactor,
	LabelEnvironmentalFactor,
}

type RelType string

const (
	RelHasSymptom             RelType = "HAS_SYMPTOM"
	RelTreatedWith            RelType = "TREATED_WITH"
	RelCausedBy               RelType = "CAUSED_BY"
	RelAffectedByLifestyle    RelType = "AFFECTED_BY_LIFESTYLE"
	RelTriggeredByEnvironment RelType = "TRIGGERED_BY_ENVIRONMENT"
)

// Category ties a record field to the node label and Disease edge it produces.
type Category struct {
	Field string
	Label Label
	Rel   RelType
}

// Categories is ordered the way records are ingested.
var Categories = []Category{
	{Field: "symptoms", Label: LabelSymptom, Rel: RelHasSymptom},
	{Field: "treatments", Label: LabelTreatment, Rel: RelTreatedWith},
	{Field: "causes", Label: LabelCause, Rel: RelCausedBy},
	{Field: "lifestyle_factors", Label: LabelLifestyleFactor, Rel: RelAffectedByLifestyle},
	{Field: "environmental_factors", Label: LabelEnvironmentalFactor, Rel: RelTriggeredByEnvironment},
}

// CategoryFor returns the category that produces label.
func CategoryFor(label Label) (Category, bool) {
	for _, c := range Categories {
		if c.Label == label {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryForRel returns the category whose edge type is rel.
func CategoryForRel(rel RelType) (Category, bool) {
	for _, c := range Categories {
		if c.Rel == rel {
			return c, true
		}
	}
	return Category{}, false
}

// DiseaseRecord is one entry of the corpus. Absent list fields decode as nil.
type DiseaseRecord struct {
	Disease              *string  `json:"disease,omitempty" yaml:"disease,omitempty"`
	AgeGroups            []string `json:"age_groups,omitempty" yaml:"age_groups,omitempty"`
	SeverityLevels       []string `json:"severity_levels,omitempty" yaml:"severity_levels,omitempty"`
	DurationPatterns     []string `json:"duration_patterns,omitempty" yaml:"duration_patterns,omitempty"`
	Symptoms             []string `json:"symptoms,omitempty" yaml:"symptoms,omitempty"`
	Treatments           []string `json:"treatments,omitempty" yaml:"treatments,omitempty"`
	Causes               []string `json:"causes,omitempty" yaml:"causes,omitempty"`
	LifestyleFactors     []string `json:"lifestyle_factors,omitempty" yaml:"lifestyle_factors,omitempty"`
	EnvironmentalFactors []string `json:"environmental_factors,omitempty" yaml:"environmental_factors,omitempty"`
}

// DiseaseName is the disease field, or UnknownDisease when absent.
func (r DiseaseRecord) DiseaseName() string {
	if r.Disease == nil {
		return UnknownDisease
	}
	return *r.Disease
}

// Values returns the raw entries of the record field behind c.
func (r DiseaseRecord) Values(c Category) []string {
	switch c.Label {
	case LabelSymptom:
		return r.Symptoms
	case LabelTreatment:
		return r.Treatments
	case LabelCause:
		return r.Causes
	case LabelLifestyleFactor:
		return r.LifestyleFactors
	case LabelEnvironmentalFactor:
		return r.EnvironmentalFactors
	default:
		return nil
	}
}

// DiseaseMetadata is overwritten on every upsert of a Disease node.
type DiseaseMetadata struct {
	AgeGroups        []string `json:"age_groups"`
	SeverityLevels   []string `json:"severity_levels"`
	DurationPatterns []string `json:"duration_patterns"`
}

// Metadata returns the record's metadata lists, never nil.
func (r DiseaseRecord) Metadata() DiseaseMetadata {
	return DiseaseMetadata{
		AgeGroups:        nonNil(r.AgeGroups),
		SeverityLevels:   nonNil(r.SeverityLevels),
		DurationPatterns: nonNil(r.DurationPatterns),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
