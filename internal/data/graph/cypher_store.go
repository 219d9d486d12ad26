package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

// Querier executes one parameterized statement. Query runs in write mode,
// Read in read mode. *neo4jdb.Client satisfies it.
type Querier interface {
	Query(ctx context.Context, statement string, params map[string]any) ([]map[string]any, error)
	Read(ctx context.Context, statement string, params map[string]any) ([]map[string]any, error)
}

type CypherStore struct {
	q   Querier
	log *logger.Logger
}

func NewCypherStore(q Querier, log *logger.Logger) *CypherStore {
	if log == nil {
		log = logger.NewNop()
	}
	return &CypherStore{q: q, log: log.With("component", "CypherStore")}
}

// EnsureSchema creates one uniqueness constraint per label. Failures are
// logged and skipped; restricted users may not be allowed to create them.
func (s *CypherStore) EnsureSchema(ctx context.Context) error {
	for _, label := range medical.Labels {
		if _, err := s.q.Query(ctx, constraintStatement(label), nil); err != nil {
			s.log.Warn("neo4j schema init failed (continuing)", "label", label, "constraint", constraintName(label), "error", err)
		}
	}
	return nil
}

func (s *CypherStore) UpsertDisease(ctx context.Context, name string, md medical.DiseaseMetadata) error {
	_, err := s.q.Query(ctx, stmtUpsertDisease, map[string]any{
		"name":              name,
		"age_groups":        toAnySlice(md.AgeGroups),
		"severity_levels":   toAnySlice(md.SeverityLevels),
		"duration_patterns": toAnySlice(md.DurationPatterns),
	})
	if err != nil {
		return fmt.Errorf("upsert disease %q: %w", name, err)
	}
	return nil
}

func (s *CypherStore) LinkEntity(ctx context.Context, disease string, c medical.Category, name string) error {
	if err := checkCategory(c); err != nil {
		return err
	}
	_, err := s.q.Query(ctx, linkStatement(c), map[string]any{
		"disease": disease,
		"name":    name,
	})
	if err != nil {
		return fmt.Errorf("link %q -[%s]-> %s %q: %w", disease, c.Rel, c.Label, name, err)
	}
	return nil
}

func (s *CypherStore) Reset(ctx context.Context) error {
	if _, err := s.q.Query(ctx, stmtReset, nil); err != nil {
		return fmt.Errorf("reset graph: %w", err)
	}
	return nil
}

func (s *CypherStore) CountNodes(ctx context.Context) (int64, error) {
	return s.count(ctx, stmtCountNodes)
}

func (s *CypherStore) CountRelationships(ctx context.Context) (int64, error) {
	return s.count(ctx, stmtCountRelationships)
}

func (s *CypherStore) count(ctx context.Context, stmt string) (int64, error) {
	rows, err := s.q.Read(ctx, stmt, nil)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return asInt64(rows[0]["count"]), nil
}

func (s *CypherStore) NodeDistribution(ctx context.Context) ([]LabelCount, error) {
	rows, err := s.q.Read(ctx, stmtNodeDistribution, nil)
	if err != nil {
		return nil, fmt.Errorf("node distribution: %w", err)
	}
	out := make([]LabelCount, 0, len(rows))
	for _, row := range rows {
		label, _ := row["type"].(string)
		out = append(out, newLabelCount(label, asInt64(row["count"])))
	}
	return out, nil
}

func (s *CypherStore) MatchDiseasesBySymptoms(ctx context.Context, symptoms []string, limit int) ([]DiseaseMatch, error) {
	keys := symptomKeys(symptoms)
	if len(keys) == 0 {
		return []DiseaseMatch{}, nil
	}
	rows, err := s.q.Read(ctx, stmtMatchBySymptoms, map[string]any{
		"symptoms": toAnySlice(keys),
		"limit":    int64(matchLimit(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("match diseases: %w", err)
	}
	out := make([]DiseaseMatch, 0, len(rows))
	for _, row := range rows {
		name, _ := row["disease"].(string)
		out = append(out, DiseaseMatch{
			Disease: name,
			Matched: asStrings(row["matched"]),
			Score:   int(asInt64(row["score"])),
		})
	}
	sortMatches(out)
	return out, nil
}

func (s *CypherStore) DiseaseProfile(ctx context.Context, name string) (*DiseaseProfile, bool, error) {
	rows, err := s.q.Read(ctx, stmtDiseaseProfile, map[string]any{"name": name})
	if err != nil {
		return nil, false, fmt.Errorf("disease profile %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	p := newProfile(name)
	p.Metadata = medical.DiseaseMetadata{
		AgeGroups:        asStrings(rows[0]["age_groups"]),
		SeverityLevels:   asStrings(rows[0]["severity_levels"]),
		DurationPatterns: asStrings(rows[0]["duration_patterns"]),
	}
	for _, row := range rows {
		rel, _ := row["rel"].(string)
		c, ok := medical.CategoryForRel(medical.RelType(rel))
		if !ok {
			continue
		}
		target, _ := row["target"].(string)
		p.Related[c.Field] = append(p.Related[c.Field], target)
	}
	p.sortRelated()
	return p, true, nil
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asStrings(v any) []string {
	switch items := v.(type) {
	case []string:
		return append([]string{}, items...)
	case []any:
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.(string); ok {
				out = append(out, s)
			} else if it != nil {
				out = append(out, strings.TrimSpace(fmt.Sprint(it)))
			}
		}
		return out
	default:
		return []string{}
	}
}
