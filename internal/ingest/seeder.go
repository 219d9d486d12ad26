package ingest

import (
	"context"
	"sync"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

const seedOK = "Database seeded successfully"

type SeedReport struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Stats   medical.Stats `json:"stats"`
}

// Seeder resets the graph and ingests the corpus as one step. Calls are
// serialized so a reset never interleaves with another run's writes.
type Seeder struct {
	mu         sync.Mutex
	pipeline   *Pipeline
	corpusPath string
	log        *logger.Logger
}

func NewSeeder(p *Pipeline, corpusPath string, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.NewNop()
	}
	return &Seeder{pipeline: p, corpusPath: corpusPath, log: log.With("component", "Seeder")}
}

func (s *Seeder) CorpusPath() string { return s.corpusPath }

// Seed loads the corpus, then resets (when asked) and ingests it. A corpus
// that fails to load leaves the graph untouched.
func (s *Seeder) Seed(ctx context.Context, reset bool) (SeedReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.pipeline.Load(ctx, s.corpusPath)
	if err != nil {
		return SeedReport{Message: err.Error()}, err
	}
	if reset {
		if err := s.pipeline.Reset(ctx); err != nil {
			return SeedReport{Message: err.Error()}, err
		}
	}
	if err := s.pipeline.EnsureSchema(ctx); err != nil {
		s.log.Warn("schema init failed (continuing)", "error", err)
	}
	stats, err := s.pipeline.ingestLoaded(ctx, s.corpusPath, records)
	if err != nil {
		return SeedReport{Message: err.Error(), Stats: stats}, err
	}
	s.log.Info("seed complete", "corpus", s.corpusPath, "stats", stats.String())
	return SeedReport{Success: true, Message: seedOK, Stats: stats}, nil
}
