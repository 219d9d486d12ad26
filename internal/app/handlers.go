package app

import (
	httpH "github.com/Rami-ben-jouira/rag-agent-project/internal/http/handlers"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Seed    *httpH.SeedHandler
	Graph   *httpH.GraphHandler
	Analyze *httpH.AnalyzeHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(services.Graph, log),
		Seed:    httpH.NewSeedHandler(services.Seeder),
		Graph:   httpH.NewGraphHandler(services.Graph),
		Analyze: httpH.NewAnalyzeHandler(),
	}
}
