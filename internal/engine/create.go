package engine

import (
	"context"
	"fmt"
	"strings"
)

type AddQuestInput struct {
	Title       string
	Description string
	// XP defaults to DefaultQuestXP when nil.
	XP *int
}

const maxIDAttempts = 16

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title", Reason: "title is required"}
	}
	return t, nil
}

func normalizeXP(xp *int) (int, error) {
	if xp == nil {
		return DefaultQuestXP, nil
	}
	if *xp < 0 {
		return 0, ValidationError{Field: "xp", Reason: "must be a non-negative integer"}
	}
	if *xp > MaxQuestXP {
		return 0, ValidationError{Field: "xp", Reason: fmt.Sprintf("must be at most %d", MaxQuestXP)}
	}
	return *xp, nil
}

// Add appends a new open quest. It never changes the XP total.
func (b *Board) Add(ctx context.Context, in AddQuestInput) (*Quest, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	xp, err := normalizeXP(in.XP)
	if err != nil {
		return nil, err
	}

	id, err := b.uniqueID()
	if err != nil {
		return nil, err
	}

	q := Quest{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		XP:          xp,
		Completed:   false,
	}

	quests := make([]Quest, len(b.quests), len(b.quests)+1)
	copy(quests, b.quests)
	quests = append(quests, q)

	if err := saveQuests(ctx, b.store, quests); err != nil {
		return nil, err
	}
	b.quests = quests

	b.logger.Debug("quest added", "id", q.ID, "title", q.Title, "xp", q.XP)
	b.notify()
	return &q, nil
}

func (b *Board) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := b.newID()
		if id != "" && b.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errIDExhausted
}
