package app

import (
	"github.com/Rami-ben-jouira/rag-agent-project/internal/data/graph"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/ingest"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

type Services struct {
	Graph        graph.Store
	Pipeline     *ingest.Pipeline
	Seeder       *ingest.Seeder
	Bootstrapper *ingest.Bootstrapper
}

func wireServices(log *logger.Logger, cfg Config, store graph.Store) Services {
	log.Info("Wiring services...")
	pipeline := ingest.NewPipeline(store, log, ingest.Options{ContinueOnError: cfg.ContinueOnError})
	seeder := ingest.NewSeeder(pipeline, cfg.CorpusPath, log)
	return Services{
		Graph:        store,
		Pipeline:     pipeline,
		Seeder:       seeder,
		Bootstrapper: ingest.NewBootstrapper(store, seeder, log),
	}
}
