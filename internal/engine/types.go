package engine

// Quest is a single to-do item carrying an experience reward.
type Quest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XP          int    `json:"xp"`
	Completed   bool   `json:"completed"`
}

// State is a point-in-time copy of the board, safe to hand to renderers.
type State struct {
	Quests   []Quest
	XPTotal  int
	Level    int
	Progress int
}

// Counts returns the number of completed and open quests.
func (s State) Counts() (done int, open int) {
	for i := range s.Quests {
		if s.Quests[i].Completed {
			done++
		} else {
			open++
		}
	}
	return done, open
}

// DefaultQuests is the seed list used when nothing usable is stored.
func DefaultQuests() []Quest {
	return []Quest{
		{ID: "1", Title: "Start Your Journey", Description: "Complete your first task to earn XP!", XP: 50, Completed: false},
		{ID: "2", Title: "Daily Grind", Description: "Log in and check your quests.", XP: 20, Completed: true},
	}
}
