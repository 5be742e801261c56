package engine

// Achievement is a badge derived from the board state. Nothing is stored:
// badges are recomputed from a State on demand.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements a board state has earned.
type AchievementChecker struct {
	state State
}

func NewAchievementChecker(state State) *AchievementChecker {
	return &AchievementChecker{state: state}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("apprentice", "Apprentice", "Reach level 2", "🌱", 2),
		c.levelAchievement("adventurer", "Adventurer", "Reach level 5", "🌳", 5),
		c.levelAchievement("hero", "Hero", "Reach level 10", "⭐", 10),

		// Completion milestones
		c.questCountAchievement("first_quest", "First Quest", "Complete 1 quest", "✓", 1),
		c.questCountAchievement("productive", "Productive", "Complete 10 quests", "📋", 10),
		c.questCountAchievement("powerhouse", "Powerhouse", "Complete 50 quests", "🏆", 50),

		c.clearedBoardAchievement("clean_slate", "Clean Slate", "Complete every quest on the board", "🧹"),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	earned := LevelForTotalXP(c.state.XPTotal) >= level
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) questCountAchievement(id, name, desc, icon string, count int) Achievement {
	done, _ := c.state.Counts()
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: done >= count}
}

func (c *AchievementChecker) clearedBoardAchievement(id, name, desc, icon string) Achievement {
	done, open := c.state.Counts()
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: done > 0 && open == 0}
}
