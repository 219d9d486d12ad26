package medical

import (
	"reflect"
	"testing"
)

func TestDiseaseNameFallback(t *testing.T) {
	if got := (DiseaseRecord{}).DiseaseName(); got != UnknownDisease {
		t.Fatalf("absent: want=%q got=%q", UnknownDisease, got)
	}
	empty := ""
	if got := (DiseaseRecord{Disease: &empty}).DiseaseName(); got != "" {
		t.Fatalf("explicit empty: want=%q got=%q", "", got)
	}
}

func TestMetadataNeverNil(t *testing.T) {
	md := DiseaseRecord{SeverityLevels: []string{"mild"}}.Metadata()
	if md.AgeGroups == nil || md.DurationPatterns == nil {
		t.Fatalf("metadata lists must be non-nil: %+v", md)
	}
	if !reflect.DeepEqual(md.SeverityLevels, []string{"mild"}) {
		t.Fatalf("SeverityLevels: want=%v got=%v", []string{"mild"}, md.SeverityLevels)
	}
}

func TestCategoriesCoverEveryRelatedLabel(t *testing.T) {
	rec := DiseaseRecord{
		Symptoms:             []string{"s"},
		Treatments:           []string{"t"},
		Causes:               []string{"c"},
		LifestyleFactors:     []string{"l"},
		EnvironmentalFactors: []string{"e"},
	}
	var stats Stats
	for _, c := range Categories {
		if len(rec.Values(c)) != 1 {
			t.Fatalf("category %s: no values", c.Field)
		}
		got, ok := CategoryFor(c.Label)
		if !ok || got != c {
			t.Fatalf("CategoryFor(%s): want=%+v got=%+v", c.Label, c, got)
		}
		stats.AddLink(c.Label)
	}
	want := Stats{Symptoms: 1, Treatments: 1, Causes: 1, LifestyleFactors: 1, EnvironmentalFactors: 1, Relationships: 5}
	if stats != want {
		t.Fatalf("stats: want=%+v got=%+v", want, stats)
	}
	if _, ok := CategoryFor(LabelDisease); ok {
		t.Fatalf("Disease must not be a related category")
	}
}
