package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestInit_None(t *testing.T) {
	_, shutdown, err := Init("headline", "test", Config{Exporter: "none"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	_, span := Tracer().Start(context.Background(), "noop")
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestInit_StdoutWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	_, shutdown, err := Init("headline", "test", Config{Exporter: "stdout", Output: &buf})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() {
		_, _, _ = Init("headline", "test", Config{Exporter: "none"})
	})

	_, span := Tracer().Start(context.Background(), "headline.render")
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !strings.Contains(buf.String(), "headline.render") {
		t.Fatalf("expected span in exporter output, got %q", buf.String())
	}
}

func TestInit_UnknownExporter(t *testing.T) {
	if _, _, err := Init("headline", "test", Config{Exporter: "otlp"}); err == nil {
		t.Fatalf("expected error for unknown exporter")
	}
}
