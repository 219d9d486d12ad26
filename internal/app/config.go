package app

import (
	"net"
	"strconv"
	"time"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/observability"
	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/envutil"
)

const (
	defaultPort       = 5000
	defaultCorpusPath = "data/medical_data.json"
)

type Config struct {
	LogMode         string
	Environment     string
	Version         string
	Port            int
	CorpusPath      string
	Bootstrap       bool
	ContinueOnError bool
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	Otel            observability.OtelConfig
}

// LoadConfig reads the process environment. Call envutil.LoadDotEnv first
// to pick up a .env file.
func LoadConfig() Config {
	cfg := Config{
		LogMode:         envutil.String("LOG_MODE", "development"),
		Environment:     envutil.String("APP_ENV", "development"),
		Version:         envutil.String("APP_VERSION", "dev"),
		Port:            envutil.PositiveInt("PORT", defaultPort),
		CorpusPath:      envutil.String("MEDGRAPH_CORPUS_PATH", defaultCorpusPath),
		Bootstrap:       envutil.Bool("MEDGRAPH_BOOTSTRAP", true),
		ContinueOnError: envutil.Bool("INGEST_CONTINUE_ON_ERROR", false),
		CORSOrigins:     envutil.List("CORS_ALLOW_ORIGINS", []string{"*"}),
		ShutdownTimeout: envutil.Seconds("HTTP_SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
	}
	cfg.Otel = observability.OtelConfigFromEnv(observability.DefaultServiceName, cfg.Environment, cfg.Version)
	return cfg
}

func (c Config) Addr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(c.Port))
}
