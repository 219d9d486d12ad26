package neo4jdb

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/platform/logger"
)

// stubDriver hands out sessions that run transaction work through fn.
type stubDriver struct {
	neo4j.DriverWithContext
	fn func(ctx context.Context) (any, error)
}

func (d *stubDriver) NewSession(context.Context, neo4j.SessionConfig) neo4j.SessionWithContext {
	return &stubSession{fn: d.fn}
}

type stubSession struct {
	neo4j.SessionWithContext
	fn func(ctx context.Context) (any, error)
}

func (s *stubSession) ExecuteRead(ctx context.Context, _ neo4j.ManagedTransactionWork, _ ...func(*neo4j.TransactionConfig)) (any, error) {
	return s.fn(ctx)
}

func (s *stubSession) ExecuteWrite(ctx context.Context, _ neo4j.ManagedTransactionWork, _ ...func(*neo4j.TransactionConfig)) (any, error) {
	return s.fn(ctx)
}

func (s *stubSession) Close(context.Context) error { return nil }

func stubClient(queryTimeout time.Duration, fn func(ctx context.Context) (any, error)) *Client {
	return &Client{
		Driver: &stubDriver{fn: fn},
		cfg:    Config{QueryTimeout: queryTimeout},
		log:    logger.NewNop(),
	}
}

func TestQueryDeadlineIsQueryTimeout(t *testing.T) {
	stall := func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	c := stubClient(20*time.Millisecond, stall)

	start := time.Now()
	for name, call := range map[string]func(context.Context, string, map[string]any) ([]map[string]any, error){
		"write": c.Query,
		"read":  c.Read,
	} {
		_, err := call(context.Background(), "MATCH (n) RETURN count(n) AS count", nil)
		if !IsQueryError(err) {
			t.Fatalf("%s: want QueryError got=%T %v", name, err, err)
		}
		var qe *QueryError
		errors.As(err, &qe)
		if !qe.Timeout {
			t.Fatalf("%s: want Timeout=true got=%+v", name, qe)
		}
		if !strings.Contains(err.Error(), "query timed out") {
			t.Fatalf("%s: message: got=%q", name, err.Error())
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("%s: want DeadlineExceeded in chain got=%v", name, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("deadline not applied: took %s", elapsed)
	}
}

func TestQueryRejectionIsNotTimeout(t *testing.T) {
	c := stubClient(time.Second, func(context.Context) (any, error) {
		return nil, errors.New("Neo.ClientError.Statement.SyntaxError")
	})

	_, err := c.Query(context.Background(), "MERGE (", nil)
	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("want QueryError got=%T %v", err, err)
	}
	if qe.Timeout || !strings.Contains(err.Error(), "query failed") {
		t.Fatalf("want non-timeout failure got=%+v %q", qe, err.Error())
	}
}

func TestQueryReturnsRows(t *testing.T) {
	rows := []map[string]any{{"count": int64(3)}}
	c := stubClient(time.Second, func(context.Context) (any, error) { return rows, nil })

	got, err := c.Read(context.Background(), "MATCH (n) RETURN count(n) AS count", nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0]["count"] != int64(3) {
		t.Fatalf("rows: want=%v got=%v", rows, got)
	}
}

func TestSummarizeKeepsRunesWhole(t *testing.T) {
	stmt := "MERGE (d:Disease {name: '" + strings.Repeat("é", 100) + "'})"
	got := summarize(stmt)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("summarize: want truncation got=%q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("summarize split a rune: %q", got)
	}
	if n := len([]rune(got)); n != 80 {
		t.Fatalf("summarize: want 80 runes got=%d", n)
	}
	if short := summarize("RETURN  1"); short != "RETURN 1" {
		t.Fatalf("summarize short: got=%q", short)
	}
}
