package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFrom(t *testing.T) {
	nf := NotFound("disease_not_found", errors.New("no such disease"))
	got := From(fmt.Errorf("wrapped: %w", nf), "internal")
	if got.Status != http.StatusNotFound || got.Code != "disease_not_found" {
		t.Fatalf("From: want=404/disease_not_found got=%d/%s", got.Status, got.Code)
	}

	plain := errors.New("boom")
	got = From(plain, "graph_unavailable")
	if got.Status != http.StatusInternalServerError || got.Code != "graph_unavailable" || !errors.Is(got, plain) {
		t.Fatalf("From: want=500/graph_unavailable got=%d/%s", got.Status, got.Code)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := New(http.StatusTeapot, "", nil).Error(); got != "api error (418)" {
		t.Fatalf("Error: want=%q got=%q", "api error (418)", got)
	}
	if got := BadRequest("invalid_request", nil).Error(); got != "invalid_request" {
		t.Fatalf("Error: want=%q got=%q", "invalid_request", got)
	}
}
