package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{" WARN ", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		logger, err := New(tt.level)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if !logger.Core().Enabled(tt.enabled) {
			t.Errorf("New(%q) should enable %s", tt.level, tt.enabled)
		}
		if tt.enabled > zapcore.DebugLevel && logger.Core().Enabled(tt.enabled-1) {
			t.Errorf("New(%q) should not enable %s", tt.level, tt.enabled-1)
		}
	}
}

func TestMust_FallsBackToNop(t *testing.T) {
	if Must("nonsense") == nil {
		t.Error("Must should never return nil")
	}
}
