package leveling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want Info
	}{
		{"zero", 0, Info{Level: 1, XPIntoLevel: 0, XPToNextLevel: 100}},
		{"just below first threshold", 99, Info{Level: 1, XPIntoLevel: 99, XPToNextLevel: 100}},
		{"exactly first threshold", 100, Info{Level: 2, XPIntoLevel: 0, XPToNextLevel: 200}},
		{"mid second level", 250, Info{Level: 2, XPIntoLevel: 150, XPToNextLevel: 200}},
		{"exactly second threshold", 300, Info{Level: 3, XPIntoLevel: 0, XPToNextLevel: 300}},
		{"deep in the curve", 1234, Info{Level: 5, XPIntoLevel: 234, XPToNextLevel: 500}},
		{"negative clamps to zero", -5, Info{Level: 1, XPIntoLevel: 0, XPToNextLevel: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Compute(tt.xp))
		})
	}
}

func TestComputeLevelAlwaysAtLeastOne(t *testing.T) {
	for xp := 0; xp <= 5000; xp += 7 {
		info := Compute(xp)
		require.GreaterOrEqual(t, info.Level, 1, "xp=%d", xp)
		require.GreaterOrEqual(t, info.XPIntoLevel, 0, "xp=%d", xp)
		require.Greater(t, info.XPToNextLevel, 0, "xp=%d", xp)
	}
}

func TestThresholdRoundTrip(t *testing.T) {
	// The cumulative threshold for a level must land exactly at the start of
	// that level, and adding XPIntoLevel back reproduces the input.
	for level := 1; level <= 50; level++ {
		total := TotalXPForLevel(level)
		info := Compute(total)
		require.Equal(t, level, info.Level)
		require.Equal(t, 0, info.XPIntoLevel)
		require.Equal(t, BaseXP*level, info.XPToNextLevel)
	}

	for xp := 0; xp <= 3000; xp += 11 {
		info := Compute(xp)
		require.Equal(t, xp, TotalXPForLevel(info.Level)+info.XPIntoLevel, "xp=%d", xp)
	}
}
