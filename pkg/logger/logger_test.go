package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextFieldsAppearInOutput(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithUser(ctx, "ana torres")
	ctx = logg.WithCollection(ctx, "producto")
	logg.Info(ctx, "listado")

	line := buf.String()
	for _, want := range []string{
		`"request_id":"req-123"`,
		`"user":"ana torres"`,
		`"collection":"producto"`,
		`"service":"test"`,
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line missing %s: %s", want, line)
		}
	}
}

func TestFieldsDoNotLeakAcrossContexts(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	_ = logg.WithCollection(context.Background(), "pedido")
	logg.Info(context.Background(), "sin coleccion")

	if strings.Contains(buf.String(), "pedido") {
		t.Fatalf("field attached to a derived context leaked into the base logger: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"":         zerolog.InfoLevel,
		"bogus":    zerolog.InfoLevel,
		"error":    zerolog.ErrorLevel,
		"trace":    zerolog.TraceLevel,
		"disabled": zerolog.Disabled,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
