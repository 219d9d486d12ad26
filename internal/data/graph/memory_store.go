package graph

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
)

type nodeKey struct {
	label medical.Label
	name  string
}

type edgeKey struct {
	disease string
	rel     medical.RelType
	target  nodeKey
}

// MemoryStore keeps the graph in process with the same MERGE semantics as
// CypherStore. It backs dry runs and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	nodes    map[nodeKey]struct{}
	metadata map[string]medical.DiseaseMetadata
	edges    map[edgeKey]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes:    make(map[nodeKey]struct{}),
		metadata: make(map[string]medical.DiseaseMetadata),
		edges:    make(map[edgeKey]struct{}),
	}
}

func (m *MemoryStore) EnsureSchema(ctx context.Context) error { return ctx.Err() }

func (m *MemoryStore) UpsertDisease(ctx context.Context, name string, md medical.DiseaseMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[nodeKey{label: medical.LabelDisease, name: name}] = struct{}{}
	m.metadata[name] = medical.DiseaseMetadata{
		AgeGroups:        append([]string{}, md.AgeGroups...),
		SeverityLevels:   append([]string{}, md.SeverityLevels...),
		DurationPatterns: append([]string{}, md.DurationPatterns...),
	}
	return nil
}

// LinkEntity upserts the node first and only adds the edge when the Disease
// exists, the same order the Cypher statement uses.
func (m *MemoryStore) LinkEntity(ctx context.Context, disease string, c medical.Category, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkCategory(c); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	target := nodeKey{label: c.Label, name: name}
	m.nodes[target] = struct{}{}
	if _, ok := m.nodes[nodeKey{label: medical.LabelDisease, name: disease}]; !ok {
		return nil
	}
	m.edges[edgeKey{disease: disease, rel: c.Rel, target: target}] = struct{}{}
	return nil
}

func (m *MemoryStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes = make(map[nodeKey]struct{})
	m.metadata = make(map[string]medical.DiseaseMetadata)
	m.edges = make(map[edgeKey]struct{})
	return nil
}

func (m *MemoryStore) CountNodes(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.nodes)), nil
}

func (m *MemoryStore) CountRelationships(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.edges)), nil
}

func (m *MemoryStore) NodeDistribution(ctx context.Context) ([]LabelCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	counts := make(map[string]int64)
	for k := range m.nodes {
		counts[string(k.label)]++
	}
	m.mu.RUnlock()

	out := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, newLabelCount(label, n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func (m *MemoryStore) MatchDiseasesBySymptoms(ctx context.Context, symptoms []string, limit int) ([]DiseaseMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys := symptomKeys(symptoms)
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	m.mu.RLock()
	matched := make(map[string][]string)
	for e := range m.edges {
		if e.rel != medical.RelHasSymptom {
			continue
		}
		if wanted[strings.ToLower(strings.TrimSpace(e.target.name))] {
			matched[e.disease] = append(matched[e.disease], e.target.name)
		}
	}
	m.mu.RUnlock()

	out := make([]DiseaseMatch, 0, len(matched))
	for disease, names := range matched {
		out = append(out, DiseaseMatch{Disease: disease, Matched: names, Score: len(names)})
	}
	sortMatches(out)
	if l := matchLimit(limit); len(out) > l {
		out = out[:l]
	}
	return out, nil
}

func (m *MemoryStore) DiseaseProfile(ctx context.Context, name string) (*DiseaseProfile, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	md, ok := m.metadata[name]
	if !ok {
		return nil, false, nil
	}
	p := newProfile(name)
	p.Metadata = medical.DiseaseMetadata{
		AgeGroups:        append([]string{}, md.AgeGroups...),
		SeverityLevels:   append([]string{}, md.SeverityLevels...),
		DurationPatterns: append([]string{}, md.DurationPatterns...),
	}
	for e := range m.edges {
		if e.disease != name {
			continue
		}
		if c, ok := medical.CategoryForRel(e.rel); ok {
			p.Related[c.Field] = append(p.Related[c.Field], e.target.name)
		}
	}
	p.sortRelated()
	return p, true, nil
}
