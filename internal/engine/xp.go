package engine

import "math"

const (
	// XPPerLevel is the width of every level band.
	XPPerLevel = 100

	// DefaultQuestXP is awarded by new quests that do not name a value.
	DefaultQuestXP = 50

	// DefaultTotalXP is the starting total paired with DefaultQuests.
	DefaultTotalXP = 70

	// MaxQuestXP bounds the XP a single quest may award.
	MaxQuestXP = 999999
)

// LevelForTotalXP returns floor(totalXP/100) + 1. Negative totals count as 0.
func LevelForTotalXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1
}

// ProgressForTotalXP returns the XP earned inside the current level, in [0, 99].
func ProgressForTotalXP(totalXP int) int {
	if totalXP < 0 {
		return 0
	}
	return totalXP % XPPerLevel
}

// XPRequiredForLevel returns the total XP threshold at which level begins.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * XPPerLevel
}

// XPToNextLevel returns how much XP is missing to reach the next level.
func XPToNextLevel(totalXP int) int {
	return XPRequiredForLevel(LevelForTotalXP(totalXP)+1) - max(totalXP, 0)
}

// subtractXP removes xp from total, clamped at zero.
func subtractXP(total int, xp int) int {
	if total-xp < 0 {
		return 0
	}
	return total - xp
}

// addXP adds xp to total, saturating at math.MaxInt.
func addXP(total int, xp int) int {
	if xp > math.MaxInt-total {
		return math.MaxInt
	}
	return total + xp
}
