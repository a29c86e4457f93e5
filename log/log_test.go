package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("warn")
	if err := SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if err := SetLevel("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewLoggerName(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	NewLogger("Decoder").Warn("syndrome")
	out := buf.String()
	if !strings.Contains(out, "name=Decoder") || !strings.Contains(out, "syndrome") {
		t.Fatalf("unexpected log line: %q", out)
	}
}

func TestTracer(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer ResetHooks()

	path := filepath.Join(t.TempDir(), "run")
	AddTracer(path)
	NewLogger("Check").WithField("syndrome", 6).Warn("corrected")

	data, err := os.ReadFile(path + ".warn")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"syndrome":6`) {
		t.Fatalf("warn file missing entry: %s", data)
	}
}
