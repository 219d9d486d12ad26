package logger

import "testing"

func TestSanitizeKVsRedactsCredentials(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"neo4j_password", "hunter2",
		"uri", "neo4j://localhost:7687",
		"params", map[string]interface{}{"api_key": "abc", "name": "Flu"},
	})
	if len(out) != 6 {
		t.Fatalf("len: want=%d got=%d", 6, len(out))
	}
	if out[1] != redacted {
		t.Fatalf("password: want=%q got=%v", redacted, out[1])
	}
	if out[3] != "neo4j://localhost:7687" {
		t.Fatalf("uri: want=%q got=%v", "neo4j://localhost:7687", out[3])
	}
	params, ok := out[5].(map[string]interface{})
	if !ok {
		t.Fatalf("params: expected map, got=%T", out[5])
	}
	if params["api_key"] != redacted {
		t.Fatalf("params.api_key: want=%q got=%v", redacted, params["api_key"])
	}
	if params["name"] != "Flu" {
		t.Fatalf("params.name: want=%q got=%v", "Flu", params["name"])
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"disease", "Flu", "dangling"})
	if len(out) != 3 {
		t.Fatalf("len: want=%d got=%d", 3, len(out))
	}
	if out[2] != "dangling" {
		t.Fatalf("dangling: want=%q got=%v", "dangling", out[2])
	}
}

func TestNewNopDoesNotPanic(t *testing.T) {
	log := NewNop()
	log.With("component", "test").Info("hello", "password", "x")
	log.Sync()
}
