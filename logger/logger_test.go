package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := Setup(LogConfig{Level: "debug", Format: "json", Output: path}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() { _ = Setup(DefaultConfig()) })

	l := WithComponent("test")
	l.Info().Int("invoice_id", 7).Msg("issued")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	for _, want := range []string{`"component":"test"`, `"invoice_id":7`, `"message":"issued"`} {
		if !strings.Contains(got, want) {
			t.Errorf("log line %q missing %s", got, want)
		}
	}
}

func TestSetup_BadLevel(t *testing.T) {
	if err := Setup(LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
