package engine

import (
	"context"
	"fmt"
)

type ToggleResult struct {
	QuestID     string
	Completed   bool
	Delta       int
	XPBefore    int
	XPAfter     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	LevelDown   bool
}

// Toggle flips a quest's completed flag. Completing adds the quest's XP to the
// total; un-completing subtracts it, clamped at zero. An unknown id returns
// ErrQuestNotFound and leaves the board untouched.
func (b *Board) Toggle(ctx context.Context, id string) (*ToggleResult, error) {
	i := b.indexOf(id)
	if i < 0 {
		b.logger.Debug("toggle ignored, unknown quest", "id", id)
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, id)
	}

	q := b.quests[i]
	xpBefore := b.xpTotal
	levelBefore := b.level

	next := !q.Completed
	xpAfter := addXP(xpBefore, q.XP)
	if !next {
		xpAfter = subtractXP(xpBefore, q.XP)
	}

	quests := make([]Quest, len(b.quests))
	copy(quests, b.quests)
	quests[i].Completed = next

	if err := saveAll(ctx, b.store, quests, xpAfter); err != nil {
		return nil, err
	}

	b.quests = quests
	b.setXP(xpAfter)

	res := &ToggleResult{
		QuestID:     id,
		Completed:   next,
		Delta:       xpAfter - xpBefore,
		XPBefore:    xpBefore,
		XPAfter:     xpAfter,
		LevelBefore: levelBefore,
		LevelAfter:  b.level,
		LevelUp:     b.level > levelBefore,
		LevelDown:   b.level < levelBefore,
	}
	b.logger.Debug("quest toggled", "id", id, "completed", next, "xp", xpAfter, "level", b.level)
	b.notify()
	return res, nil
}

// Complete marks an open quest as completed.
func (b *Board) Complete(ctx context.Context, id string) (*ToggleResult, error) {
	q, ok := b.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, id)
	}
	if q.Completed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCompleted, id)
	}
	return b.Toggle(ctx, id)
}

// Restore reopens a completed quest and takes its XP back.
func (b *Board) Restore(ctx context.Context, id string) (*ToggleResult, error) {
	q, ok := b.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, id)
	}
	if !q.Completed {
		return nil, fmt.Errorf("%w: %s", ErrNotCompleted, id)
	}
	return b.Toggle(ctx, id)
}
