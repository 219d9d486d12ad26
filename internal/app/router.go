package app

import (
	"github.com/gin-gonic/gin"

	server "github.com/Rami-ben-jouira/rag-agent-project/internal/http"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlers Handlers) *server.Server {
	log.Info("Wiring router...")
	if cfg.LogMode == "production" || cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return server.NewServer(cfg.Addr(), server.RouterConfig{
		Log:            log,
		ServiceName:    serviceName,
		CORSOrigins:    cfg.CORSOrigins,
		HealthHandler:  handlers.Health,
		SeedHandler:    handlers.Seed,
		GraphHandler:   handlers.Graph,
		AnalyzeHandler: handlers.Analyze,
	})
}
