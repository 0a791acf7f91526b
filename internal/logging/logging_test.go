package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	if err := setup(&buf, "info", "json"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	log.Debug().Msg("hidden")
	log.Info().Str("round", "abc").Msg("round started")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug to be filtered, got %q", out)
	}
	if !strings.Contains(out, `"round":"abc"`) {
		t.Fatalf("expected json field in output, got %q", out)
	}
}

func TestSetupBadLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	if err := setup(&buf, "loud", "console"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
