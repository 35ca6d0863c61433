// Package leveling converts cumulative XP into levels. The XP required to
// clear level k is BaseXP*k, so thresholds form an arithmetic progression:
// 100 to reach level 2, a further 200 to reach level 3, and so on.
//
// This is the only definition of the curve. API responses carry the derived
// level so clients never recompute it from raw XP.
package leveling

// BaseXP is the step between consecutive level thresholds.
const BaseXP = 100

// Info describes where an XP total sits on the curve.
type Info struct {
	Level         int `json:"level"`
	XPIntoLevel   int `json:"xpIntoLevel"`
	XPToNextLevel int `json:"xpToNextLevel"`
}

// Compute maps a cumulative XP total to its level, the XP accumulated inside
// the current level and the threshold for the next one. Negative input is
// treated as zero.
func Compute(xp int) Info {
	if xp < 0 {
		xp = 0
	}

	level := 1
	threshold := BaseXP
	for xp >= threshold {
		xp -= threshold
		level++
		threshold += BaseXP
	}

	return Info{
		Level:         level,
		XPIntoLevel:   xp,
		XPToNextLevel: threshold,
	}
}

// TotalXPForLevel returns the cumulative XP needed to have just reached the
// given level with nothing carried into it.
func TotalXPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	// Sum of BaseXP*k for k = 1..level-1.
	return BaseXP * level * (level - 1) / 2
}
