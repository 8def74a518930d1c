package logger_adapter

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aravasio/open-remax/internal/core/port"
)

func TestSlogAdapterWritesFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug})

	logger.Info("listing stored", port.Fields{"slug": "casa-uno"})
	logger.Error("fetch failed", errors.New("connection refused"), nil)

	out := buf.String()
	for _, want := range []string{"listing stored", "slug=casa-uno", "fetch failed", "connection refused"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Debug("too quiet", nil)
	logger.Info("still too quiet", nil)
	logger.Warn("loud enough", nil)

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("output carries suppressed records:\n%s", out)
	}
	if !strings.Contains(out, "loud enough") {
		t.Errorf("output missing warn record:\n%s", out)
	}
}

func TestSlogAdapterWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelInfo})

	enriched := logger.WithFields(port.Fields{"run_id": "r-42"})
	enriched.Info("run started", nil)

	if !strings.Contains(buf.String(), "run_id=r-42") {
		t.Errorf("output missing inherited field:\n%s", buf.String())
	}
}

// recordingLogger captures calls for fan-out assertions.
type recordingLogger struct {
	infos  []string
	warns  []string
	errors []string
	debugs []string
}

func (r *recordingLogger) Info(msg string, fields port.Fields) { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Warn(msg string, fields port.Fields) { r.warns = append(r.warns, msg) }
func (r *recordingLogger) Error(msg string, err error, fields port.Fields) {
	r.errors = append(r.errors, msg)
}
func (r *recordingLogger) Debug(msg string, fields port.Fields) { r.debugs = append(r.debugs, msg) }
func (r *recordingLogger) WithFields(fields port.Fields) port.LoggerPort { return r }

func TestMultiloggerFansOut(t *testing.T) {
	first := &recordingLogger{}
	second := &recordingLogger{}

	multi, err := NewMultiloggerAdapter(first, second)
	if err != nil {
		t.Fatalf("NewMultiloggerAdapter() error = %v", err)
	}

	multi.Info("hello", nil)
	multi.Error("broken", errors.New("boom"), nil)

	for i, rec := range []*recordingLogger{first, second} {
		if len(rec.infos) != 1 || len(rec.errors) != 1 {
			t.Errorf("logger %d got %d infos and %d errors, want 1 and 1", i, len(rec.infos), len(rec.errors))
		}
	}
}

func TestMultiloggerRequiresAtLeastOne(t *testing.T) {
	if _, err := NewMultiloggerAdapter(); err == nil {
		t.Fatal("NewMultiloggerAdapter() accepted an empty logger set")
	}
}
