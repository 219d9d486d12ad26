package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MEDGRAPH_CORPUS_PATH", "MEDGRAPH_BOOTSTRAP", "INGEST_CONTINUE_ON_ERROR", "CORS_ALLOW_ORIGINS", "HTTP_SHUTDOWN_TIMEOUT_SECONDS", "OTEL_ENABLED"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	if cfg.Port != 5000 {
		t.Fatalf("Port: want=%d got=%d", 5000, cfg.Port)
	}
	if cfg.CorpusPath != "data/medical_data.json" {
		t.Fatalf("CorpusPath: want=%q got=%q", "data/medical_data.json", cfg.CorpusPath)
	}
	if !cfg.Bootstrap || cfg.ContinueOnError {
		t.Fatalf("flags: want bootstrap=true continue=false got=%v/%v", cfg.Bootstrap, cfg.ContinueOnError)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins: want=[*] got=%v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("ShutdownTimeout: want=15s got=%s", cfg.ShutdownTimeout)
	}
	if cfg.Otel.Enabled {
		t.Fatalf("Otel.Enabled: want=false")
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Fatalf("Addr: want=%q got=%q", "0.0.0.0:5000", cfg.Addr())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MEDGRAPH_CORPUS_PATH", "/srv/corpus.yaml")
	t.Setenv("MEDGRAPH_BOOTSTRAP", "false")
	t.Setenv("INGEST_CONTINUE_ON_ERROR", "yes")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg := LoadConfig()
	if cfg.Port != 8080 || cfg.CorpusPath != "/srv/corpus.yaml" {
		t.Fatalf("overrides: got port=%d corpus=%q", cfg.Port, cfg.CorpusPath)
	}
	if cfg.Bootstrap || !cfg.ContinueOnError {
		t.Fatalf("flags: want bootstrap=false continue=true got=%v/%v", cfg.Bootstrap, cfg.ContinueOnError)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins: got=%v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout: want=3s got=%s", cfg.ShutdownTimeout)
	}
}
