package neo4jdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
	cfg      Config
	log      *logger.Logger
}

func NewFromEnv(log *logger.Logger) (*Client, error) {
	cfg, err := ResolveConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(log, cfg)
}

// New opens the driver and verifies connectivity exactly once.
func New(log *logger.Logger, cfg Config) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("neo4jdb: logger required")
	}

	auth := neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		c.MaxConnectionPoolSize = cfg.MaxPoolSize
		c.SocketConnectTimeout = cfg.Timeout
		c.ConnectionAcquisitionTimeout = cfg.Timeout
	})
	if err != nil {
		return nil, &ConnectionError{URI: cfg.URI, Cause: fmt.Errorf("init driver: %w", err)}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, &ConnectionError{URI: cfg.URI, Cause: fmt.Errorf("verify connectivity: %w", err)}
	}

	log.Info("neo4j connected", "uri", cfg.URI, "database", cfg.Database, "user", cfg.Username)
	return &Client{
		Driver:   driver,
		Database: cfg.Database,
		cfg:      cfg,
		log:      log.With("client", "Neo4jDB"),
	}, nil
}

// Query runs a statement in a write transaction and returns its rows.
func (c *Client) Query(ctx context.Context, statement string, params map[string]any) ([]map[string]any, error) {
	return c.run(ctx, neo4j.AccessModeWrite, statement, params)
}

// Read runs a statement in a read transaction and returns its rows.
func (c *Client) Read(ctx context.Context, statement string, params map[string]any) ([]map[string]any, error) {
	return c.run(ctx, neo4j.AccessModeRead, statement, params)
}

func (c *Client) run(ctx context.Context, mode neo4j.AccessMode, statement string, params map[string]any) ([]map[string]any, error) {
	if c == nil || c.Driver == nil {
		return nil, &ConnectionError{Cause: errors.New("client closed")}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if c.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.QueryTimeout)
		defer cancel()
	}

	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: c.Database,
	})
	defer session.Close(ctx)

	work := func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, statement, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			rows = append(rows, rec.AsMap())
		}
		return rows, nil
	}

	var out any
	var err error
	if mode == neo4j.AccessModeRead {
		out, err = session.ExecuteRead(ctx, work)
	} else {
		out, err = session.ExecuteWrite(ctx, work)
	}
	if err != nil {
		timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
		c.log.Debug("neo4j statement failed", "statement", summarize(statement), "timeout", timedOut, "error", err)
		return nil, &QueryError{Statement: statement, Timeout: timedOut, Cause: err}
	}
	rows, _ := out.([]map[string]any)
	return rows, nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}
