package neo4jdb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestResolveConfigFromEnvValid(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j://graph:7687")
	t.Setenv("NEO4J_USERNAME", "medic")
	t.Setenv("NEO4J_USER", "ignored")
	t.Setenv("NEO4J_PASSWORD", "s3cret")
	t.Setenv("NEO4J_DATABASE", "medical")
	t.Setenv("NEO4J_QUERY_TIMEOUT_SECONDS", "3")
	t.Setenv("NEO4J_MAX_POOL_SIZE", "")

	cfg, err := ResolveConfigFromEnv()
	if err != nil {
		t.Fatalf("ResolveConfigFromEnv: %v", err)
	}
	if cfg.URI != "neo4j://graph:7687" {
		t.Fatalf("URI: want=%q got=%q", "neo4j://graph:7687", cfg.URI)
	}
	if cfg.Username != "medic" {
		t.Fatalf("Username: want=%q got=%q", "medic", cfg.Username)
	}
	if cfg.Password != "s3cret" {
		t.Fatalf("Password: want=%q got=%q", "s3cret", cfg.Password)
	}
	if cfg.Database != "medical" {
		t.Fatalf("Database: want=%q got=%q", "medical", cfg.Database)
	}
	if cfg.QueryTimeout != 3*time.Second {
		t.Fatalf("QueryTimeout: want=%v got=%v", 3*time.Second, cfg.QueryTimeout)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("Timeout: want=%v got=%v", 10*time.Second, cfg.Timeout)
	}
	if cfg.MaxPoolSize != 50 {
		t.Fatalf("MaxPoolSize: want=%d got=%d", 50, cfg.MaxPoolSize)
	}
}

func TestResolveConfigFromEnvUserFallback(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "")
	t.Setenv("NEO4J_USER", "legacy")

	cfg, err := ResolveConfigFromEnv()
	if err != nil {
		t.Fatalf("ResolveConfigFromEnv: %v", err)
	}
	if cfg.Username != "legacy" {
		t.Fatalf("Username: want=%q got=%q", "legacy", cfg.Username)
	}

	t.Setenv("NEO4J_USER", "")
	cfg, err = ResolveConfigFromEnv()
	if err != nil {
		t.Fatalf("ResolveConfigFromEnv: %v", err)
	}
	if cfg.Username != "neo4j" {
		t.Fatalf("Username default: want=%q got=%q", "neo4j", cfg.Username)
	}
}

func TestResolveConfigFromEnvMissingURI(t *testing.T) {
	t.Setenv("NEO4J_URI", "")

	_, err := ResolveConfigFromEnv()
	if err == nil {
		t.Fatalf("ResolveConfigFromEnv: expected error, got nil")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got=%T", err)
	}
	if cfgErr.Code != ConfigErrorMissingURI {
		t.Fatalf("code: want=%q got=%q", ConfigErrorMissingURI, cfgErr.Code)
	}
}

func TestResolveConfigFromEnvInvalidURI(t *testing.T) {
	for _, raw := range []string{"localhost:7687", "http://localhost:7474", "neo4j://"} {
		t.Setenv("NEO4J_URI", raw)
		_, err := ResolveConfigFromEnv()
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%q: expected *ConfigError, got=%T (%v)", raw, err, err)
		}
		if cfgErr.Code != ConfigErrorInvalidURI {
			t.Fatalf("%q code: want=%q got=%q", raw, ConfigErrorInvalidURI, cfgErr.Code)
		}
	}
}

func TestErrorClassification(t *testing.T) {
	cause := errors.New("boom")
	conn := fmt.Errorf("wrap: %w", &ConnectionError{URI: "neo4j://x:1", Cause: cause})
	if !IsConnectionError(conn) || IsQueryError(conn) {
		t.Fatalf("connection error misclassified: %v", conn)
	}
	if !errors.Is(conn, cause) {
		t.Fatalf("connection error does not unwrap to cause")
	}
	q := &QueryError{Statement: "MATCH (n)\n  RETURN count(n) AS count", Cause: cause}
	if !IsQueryError(q) {
		t.Fatalf("query error misclassified")
	}
	if want := "neo4jdb: query failed (MATCH (n) RETURN count(n) AS count): boom"; q.Error() != want {
		t.Fatalf("message: want=%q got=%q", want, q.Error())
	}
}

func TestClientClosedReturnsConnectionError(t *testing.T) {
	var c *Client
	_, err := c.Query(context.Background(), "RETURN 1", nil)
	if !IsConnectionError(err) {
		t.Fatalf("expected connection error, got=%v", err)
	}
	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("Close on nil client: %v", err)
	}
}
