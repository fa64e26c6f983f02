// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    slog.Level
		expected zerolog.Level
	}{
		{"below debug", slog.LevelDebug - 4, zerolog.TraceLevel},
		{"debug", slog.LevelDebug, zerolog.DebugLevel},
		{"info", slog.LevelInfo, zerolog.InfoLevel},
		{"warn", slog.LevelWarn, zerolog.WarnLevel},
		{"error", slog.LevelError, zerolog.ErrorLevel},
		{"above error", slog.LevelError + 4, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := slogToZerologLevel(tt.input); got != tt.expected {
				t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlogHandler_WritesAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.Info("service started", "service", "http-server", "attempt", 2)

	out := buf.String()
	for _, want := range []string{`"service":"http-server"`, `"attempt":2`, `"message":"service started"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestSlogHandler_GroupsAndAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf))).
		With("supervisor", "cinematch").
		WithGroup("event")

	logger.Warn("restart", "service", "api")

	out := buf.String()
	if !strings.Contains(out, `"supervisor":"cinematch"`) {
		t.Errorf("output %s missing ungrouped attribute", out)
	}
	if !strings.Contains(out, `"event.service":"api"`) {
		t.Errorf("output %s missing grouped attribute", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("output %s missing warn level", out)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}
