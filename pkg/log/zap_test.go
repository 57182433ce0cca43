package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rice-leaf-detection/pkg/log"
)

func TestLoggerAttachesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithCore(core)

	ctx := log.WithRequestID(context.Background(), "req-123")
	l.Infof(ctx, "classified %d image(s)", 1)
	l.Warn(context.Background(), "no request id here")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Message != "classified 1 image(s)" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-123" {
		t.Errorf("expected request_id req-123, got %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("did not expect request_id on entry without one")
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", entries[1].Level)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if id := log.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
	ctx := log.WithRequestID(context.Background(), "abc")
	if id := log.RequestIDFromContext(ctx); id != "abc" {
		t.Errorf("expected abc, got %q", id)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "bogus"},
	} {
		if l := log.Init(cfg); l == nil {
			t.Fatalf("Init returned nil for %+v", cfg)
		}
	}
}

func TestInitWithSink(t *testing.T) {
	var buf bytes.Buffer
	l := log.InitWithSink(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON}, &buf)

	l.Debug(context.Background(), "dropped")
	l.Info(log.WithRequestID(context.Background(), "req-9"), "kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("debug entry must be filtered at info level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"request_id":"req-9"`) {
		t.Errorf("unexpected output: %s", out)
	}
}
