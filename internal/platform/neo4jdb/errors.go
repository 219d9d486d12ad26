package neo4jdb

import (
	"errors"
	"fmt"
	"strings"
)

// ConnectionError means the store could not be reached when the client was built.
type ConnectionError struct {
	URI   string
	Cause error
}

func (e *ConnectionError) Error() string {
	if e == nil {
		return "neo4jdb: connection failed"
	}
	return fmt.Sprintf("neo4jdb: connect %s: %v", e.URI, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// QueryError wraps a statement the store rejected or that ran past its deadline.
type QueryError struct {
	Statement string
	Timeout   bool
	Cause     error
}

func (e *QueryError) Error() string {
	if e == nil {
		return "neo4jdb: query failed"
	}
	if e.Timeout {
		return fmt.Sprintf("neo4jdb: query timed out (%s): %v", summarize(e.Statement), e.Cause)
	}
	return fmt.Sprintf("neo4jdb: query failed (%s): %v", summarize(e.Statement), e.Cause)
}

func (e *QueryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

func summarize(statement string) string {
	s := strings.Join(strings.Fields(statement), " ")
	if r := []rune(s); len(r) > 80 {
		return string(r[:77]) + "..."
	}
	return s
}
