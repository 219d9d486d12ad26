package graph

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/normalization"
)

// DefaultMatchLimit caps symptom matches when the caller passes no limit.
const DefaultMatchLimit = 10

var ErrUnknownCategory = errors.New("graph: unknown entity category")

// Store is the graph as seen by ingestion, bootstrap and the read API.
// Every write is an upsert keyed by (label, name).
type Store interface {
	EnsureSchema(ctx context.Context) error
	UpsertDisease(ctx context.Context, name string, md medical.DiseaseMetadata) error
	LinkEntity(ctx context.Context, disease string, c medical.Category, name string) error
	Reset(ctx context.Context) error

	CountNodes(ctx context.Context) (int64, error)
	CountRelationships(ctx context.Context) (int64, error)
	NodeDistribution(ctx context.Context) ([]LabelCount, error)
	MatchDiseasesBySymptoms(ctx context.Context, symptoms []string, limit int) ([]DiseaseMatch, error)
	DiseaseProfile(ctx context.Context, name string) (*DiseaseProfile, bool, error)
}

var (
	_ Store = (*CypherStore)(nil)
	_ Store = (*MemoryStore)(nil)
	_ Store = (*UnavailableStore)(nil)
)

type LabelCount struct {
	Label string `json:"label"`
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type DiseaseMatch struct {
	Disease string   `json:"disease"`
	Matched []string `json:"matched_symptoms"`
	Score   int      `json:"score"`
}

type DiseaseProfile struct {
	Name     string                  `json:"name"`
	Metadata medical.DiseaseMetadata `json:"metadata"`
	// Related is keyed by record field ("symptoms", "treatments", ...).
	Related map[string][]string `json:"related"`
}

func newLabelCount(label string, count int64) LabelCount {
	return LabelCount{Label: label, Key: normalization.Sanitize(label), Count: count}
}

func newProfile(name string) *DiseaseProfile {
	p := &DiseaseProfile{
		Name:     name,
		Metadata: medical.DiseaseRecord{}.Metadata(),
		Related:  make(map[string][]string, len(medical.Categories)),
	}
	for _, c := range medical.Categories {
		p.Related[c.Field] = []string{}
	}
	return p
}

func (p *DiseaseProfile) sortRelated() {
	for _, names := range p.Related {
		sort.Strings(names)
	}
}

// symptomKeys lower-cases, trims and dedupes the wanted symptom names.
func symptomKeys(symptoms []string) []string {
	seen := make(map[string]bool, len(symptoms))
	out := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		k := strings.ToLower(strings.TrimSpace(s))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func sortMatches(matches []DiseaseMatch) {
	for i := range matches {
		sort.Strings(matches[i].Matched)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Disease < matches[j].Disease
	})
}

// checkCategory rejects categories that are not in the fixed table; labels
// and edge types are spliced into statements, so only known ones may pass.
func checkCategory(c medical.Category) error {
	known, ok := medical.CategoryFor(c.Label)
	if !ok || known != c {
		return fmt.Errorf("%w: %s/%s", ErrUnknownCategory, c.Label, c.Rel)
	}
	return nil
}

func matchLimit(limit int) int {
	if limit <= 0 {
		return DefaultMatchLimit
	}
	return limit
}
