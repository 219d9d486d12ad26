package handlers

import (
	"context"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/ingest"
)

// GraphReader is the read side of graph.Store used by the API.
type GraphReader interface {
	CountNodes(ctx context.Context) (int64, error)
	CountRelationships(ctx context.Context) (int64, error)
	NodeDistribution(ctx context.Context) ([]graph.LabelCount, error)
	MatchDiseasesBySymptoms(ctx context.Context, symptoms []string, limit int) ([]graph.DiseaseMatch, error)
	DiseaseProfile(ctx context.Context, name string) (*graph.DiseaseProfile, bool, error)
}

type Seeder interface {
	Seed(ctx context.Context, reset bool) (ingest.SeedReport, error)
}
