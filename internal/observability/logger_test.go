package observability

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscreen/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	logger := NewLogger(types.LoggingConfig{Level: "debug", Format: "json", Output: "stderr"})
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("GetLevel() = %v, want debug", logger.GetLevel())
	}
}
