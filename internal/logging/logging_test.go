package logging

import (
	"testing"
)

func TestSetLevel(t *testing.T) {
	orig := GetLevel()
	defer SetLevel(orig)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("Expected level debug, got %s", GetLevel())
	}
	if !IsDebugEnabled() {
		t.Error("Expected IsDebugEnabled=true at debug level")
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("Expected level error, got %s", GetLevel())
	}
	if IsDebugEnabled() {
		t.Error("Expected IsDebugEnabled=false at error level")
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LogLevel(42), "unknown(42)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(LevelDebug < LevelInfo && LevelInfo < LevelWarn && LevelWarn < LevelError) {
		t.Error("Log levels are not ordered by severity")
	}
}
