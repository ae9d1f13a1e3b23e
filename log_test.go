package orbitalshield

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	level.Info(l).Log("msg", "hidden")
	level.Warn(l).Log("msg", "shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown") {
		t.Fatalf("level filter not applied: %q", out)
	}
	if !strings.Contains(out, "ts=") || !strings.Contains(out, "level=warn") {
		t.Fatalf("missing timestamp or level: %q", out)
	}
	if _, err := NewLogger(&buf, "chatty"); err == nil {
		t.Fatal("unknown level accepted")
	}
}
