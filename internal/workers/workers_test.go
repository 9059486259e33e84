package workers

import (
	"os"
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	os.Unsetenv("EXTRACT_WORKERS")
	defer os.Unsetenv("EXTRACT_WORKERS")

	availableCPU := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		minExpect  int
		maxExpect  int
	}{
		{
			name:       "CPU-bound task (1.0x multiplier)",
			multiplier: 1.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU,
		},
		{
			name:       "I/O-bound task (2.0x multiplier)",
			multiplier: 2.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  availableCPU * 2,
		},
		{
			name:       "With limit lower than calculated",
			multiplier: 2.0,
			limit:      2,
			minExpect:  1,
			maxExpect:  2,
		},
		{
			name:       "Zero multiplier clamps to 1",
			multiplier: 0.0,
			limit:      0,
			minExpect:  1,
			maxExpect:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)

			if got < tt.minExpect {
				t.Errorf("Count(%v, %d) = %d, expected >= %d", tt.multiplier, tt.limit, got, tt.minExpect)
			}
			if got > tt.maxExpect {
				t.Errorf("Count(%v, %d) = %d, expected <= %d", tt.multiplier, tt.limit, got, tt.maxExpect)
			}
		})
	}
}

func TestCountWithEnvOverride(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		limit    int
		expected int
		fallback bool
	}{
		{name: "Valid override", envValue: "8", limit: 0, expected: 8},
		{name: "Override capped by limit", envValue: "20", limit: 10, expected: 10},
		{name: "Override below limit", envValue: "5", limit: 10, expected: 5},
		{name: "Non-numeric override falls back", envValue: "invalid", limit: 0, fallback: true},
		{name: "Zero override falls back", envValue: "0", limit: 0, fallback: true},
		{name: "Negative override falls back", envValue: "-5", limit: 0, fallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("EXTRACT_WORKERS", tt.envValue)
			defer os.Unsetenv("EXTRACT_WORKERS")

			got := Count(1.0, tt.limit)

			if tt.fallback {
				if got < 1 {
					t.Errorf("Count with invalid override should return at least 1, got %d", got)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("Count(1.0, %d) with EXTRACT_WORKERS=%s = %d, want %d", tt.limit, tt.envValue, got, tt.expected)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	os.Unsetenv("EXTRACT_WORKERS")
	defer os.Unsetenv("EXTRACT_WORKERS")

	if got := ForCPU(1); got != 1 {
		t.Errorf("ForCPU(1) = %d, want 1", got)
	}
	if got := ForIO(4); got < 1 || got > 4 {
		t.Errorf("ForIO(4) = %d, want within [1, 4]", got)
	}
	if got := ForMixed(0); got < 1 {
		t.Errorf("ForMixed(0) = %d, want >= 1", got)
	}
}

func TestWorkerCountConsistency(t *testing.T) {
	os.Unsetenv("EXTRACT_WORKERS")
	defer os.Unsetenv("EXTRACT_WORKERS")

	first := Count(1.5, 10)
	for i := 0; i < 5; i++ {
		if got := Count(1.5, 10); got != first {
			t.Errorf("Count(1.5, 10) returned different results: first=%d, iteration %d=%d", first, i, got)
		}
	}
}
