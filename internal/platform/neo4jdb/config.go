package neo4jdb

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/envutil"
)

type Config struct {
	URI          string
	Username     string
	Password     string
	Database     string
	Timeout      time.Duration
	QueryTimeout time.Duration
	MaxPoolSize  int
}

type ConfigErrorCode string

const (
	ConfigErrorMissingURI ConfigErrorCode = "missing_uri"
	ConfigErrorInvalidURI ConfigErrorCode = "invalid_uri"
)

type ConfigError struct {
	Code  ConfigErrorCode
	Value string
	Cause error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "invalid neo4j config"
	}
	switch e.Code {
	case ConfigErrorMissingURI:
		return "NEO4J_URI is required"
	case ConfigErrorInvalidURI:
		return fmt.Sprintf("invalid NEO4J_URI=%q; expected a URI like neo4j://localhost:7687", e.Value)
	default:
		return "invalid neo4j config"
	}
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

var supportedSchemes = map[string]bool{
	"neo4j": true, "neo4j+s": true, "neo4j+ssc": true,
	"bolt": true, "bolt+s": true, "bolt+ssc": true,
}

// ResolveConfigFromEnv reads connection settings. Credentials are passed
// through untouched; the store rejects bad ones at connect time.
func ResolveConfigFromEnv() (Config, error) {
	uri := envutil.String("NEO4J_URI", "")
	if uri == "" {
		return Config{}, &ConfigError{Code: ConfigErrorMissingURI}
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return Config{}, &ConfigError{Code: ConfigErrorInvalidURI, Value: uri, Cause: err}
	}
	if !supportedSchemes[strings.ToLower(parsed.Scheme)] || parsed.Host == "" {
		return Config{}, &ConfigError{Code: ConfigErrorInvalidURI, Value: uri}
	}

	return Config{
		URI:          uri,
		Username:     envutil.FirstString("neo4j", "NEO4J_USERNAME", "NEO4J_USER"),
		Password:     envutil.String("NEO4J_PASSWORD", ""),
		Database:     envutil.String("NEO4J_DATABASE", ""),
		Timeout:      envutil.Seconds("NEO4J_TIMEOUT_SECONDS", 10*time.Second),
		QueryTimeout: envutil.Seconds("NEO4J_QUERY_TIMEOUT_SECONDS", 30*time.Second),
		MaxPoolSize:  envutil.PositiveInt("NEO4J_MAX_POOL_SIZE", 50),
	}, nil
}
