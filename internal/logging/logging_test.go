package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestErrorAppendsToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "glossary.log")
	Configure(path)
	defer Configure("")

	Error(errors.New("fetch failed"))
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "fetch failed") {
		t.Fatalf("expected error in log, got %q", data)
	}
	if n := strings.Count(string(data), "\n"); n != 1 {
		t.Fatalf("expected one line, got %d", n)
	}
}

func TestTraceRespectsToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	defer Configure("")
	defer SetTraceEnabled(false)

	SetTraceEnabled(false)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled")
	}

	SetTraceEnabled(true)
	Trace("filter.append", map[string]interface{}{"query": "gain"})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "filter.append" || entry.Payload["query"] != "gain" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}
