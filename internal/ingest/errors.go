package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// RecordError ties a store failure to the corpus record that caused it.
type RecordError struct {
	Index   int
	Disease string
	Cause   error
}

func (e *RecordError) Error() string {
	if e == nil {
		return "ingest: record failed"
	}
	return fmt.Sprintf("ingest: record %d (%q): %v", e.Index, e.Disease, e.Cause)
}

func (e *RecordError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// BatchError is returned when records failed while ContinueOnError was set.
// Every other record was still ingested.
type BatchError struct {
	Records int
	Errors  []*RecordError
}

func (e *BatchError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "ingest: batch failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, re := range e.Errors {
		msgs = append(msgs, re.Error())
	}
	return fmt.Sprintf("ingest: %d of %d records failed: %s", len(e.Errors), e.Records, strings.Join(msgs, "; "))
}

func (e *BatchError) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, len(e.Errors))
	for i, re := range e.Errors {
		out[i] = re
	}
	return out
}

func IsRecordError(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}
