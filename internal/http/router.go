package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/Rami-ben-jouira/rag-agent-project/internal/http/handlers"
	httpMW "github.com/Rami-ben-jouira/rag-agent-project/internal/http/middleware"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	HealthHandler  *httpH.HealthHandler
	SeedHandler    *httpH.SeedHandler
	GraphHandler   *httpH.GraphHandler
	AnalyzeHandler *httpH.AnalyzeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.Health)
		}

		// Ingestion
		if cfg.SeedHandler != nil {
			api.POST("/seed", cfg.SeedHandler.Seed)
		}

		// Graph reads
		if cfg.GraphHandler != nil {
			api.GET("/stats", cfg.GraphHandler.Stats)
			api.POST("/diseases/match", cfg.GraphHandler.Match)
			api.GET("/diseases/:name", cfg.GraphHandler.Profile)
		}

		// Query construction
		if cfg.AnalyzeHandler != nil {
			api.POST("/analyze", cfg.AnalyzeHandler.Analyze)
		}
	}

	return r
}
