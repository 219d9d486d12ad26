package ingest

import (
	"context"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

type BootstrapOutcome struct {
	NodeCount int64
	Seeded    bool
	Report    SeedReport
	Err       error
}

// Bootstrapper seeds an empty graph at process start.
type Bootstrapper struct {
	store  graph.Store
	seeder *Seeder
	log    *logger.Logger
}

func NewBootstrapper(store graph.Store, seeder *Seeder, log *logger.Logger) *Bootstrapper {
	if log == nil {
		log = logger.NewNop()
	}
	return &Bootstrapper{store: store, seeder: seeder, log: log.With("component", "Bootstrapper")}
}

// Run counts nodes and seeds only when there are none; a populated graph
// receives no writes. Errors never stop startup: they are logged and
// returned in the outcome.
func (b *Bootstrapper) Run(ctx context.Context) BootstrapOutcome {
	n, err := b.store.CountNodes(ctx)
	if err != nil {
		b.log.Warn("bootstrap check failed; graph left unseeded", "error", err)
		return BootstrapOutcome{Err: err}
	}
	if n > 0 {
		b.log.Info("graph already populated; skipping seed", "node_count", n)
		return BootstrapOutcome{NodeCount: n}
	}

	b.log.Info("graph is empty; seeding", "corpus", b.seeder.CorpusPath())
	report, err := b.seeder.Seed(ctx, true)
	if err != nil {
		b.log.Warn("bootstrap seed failed; continuing without a populated graph", "error", err)
		return BootstrapOutcome{Report: report, Err: err}
	}
	return BootstrapOutcome{Seeded: true, Report: report}
}
