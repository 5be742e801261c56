package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pixelquest/internal/storage"
)

const (
	QuestsKey = "pixel-quests"
	XPKey     = "pixel-xp"
)

var errCorrupt = errors.New("corrupt entry")

func encodeQuests(quests []Quest) (string, error) {
	if quests == nil {
		quests = []Quest{}
	}
	data, err := json.Marshal(quests)
	if err != nil {
		return "", fmt.Errorf("marshal quests: %w", err)
	}
	return string(data), nil
}

// decodeQuests parses a stored quest list. Lists that break the board
// invariants (empty or duplicate ids, xp outside [0, MaxQuestXP]) are
// rejected as corrupt.
func decodeQuests(raw string) ([]Quest, error) {
	var quests []Quest
	if err := json.Unmarshal([]byte(raw), &quests); err != nil {
		return nil, fmt.Errorf("%w: unmarshal quests: %v", errCorrupt, err)
	}
	if quests == nil {
		return nil, fmt.Errorf("%w: quests is null", errCorrupt)
	}
	seen := make(map[string]bool, len(quests))
	for _, q := range quests {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: quest with empty id", errCorrupt)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: duplicate quest id %q", errCorrupt, q.ID)
		}
		if q.XP < 0 || q.XP > MaxQuestXP {
			return nil, fmt.Errorf("%w: quest %q has xp %d out of range", errCorrupt, q.ID, q.XP)
		}
		seen[q.ID] = true
	}
	return quests, nil
}

func encodeXP(total int) string {
	return strconv.Itoa(total)
}

func decodeXP(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: parse xp: %v", errCorrupt, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative xp %d", errCorrupt, n)
	}
	return n, nil
}

// loadQuests returns the stored list, ok=false when it is absent, and an
// error wrapping errCorrupt when it cannot be used.
func loadQuests(ctx context.Context, s storage.Store) (quests []Quest, ok bool, err error) {
	raw, found, err := s.Get(ctx, QuestsKey)
	if err != nil {
		return nil, false, storeErr(err)
	}
	if !found {
		return nil, false, nil
	}
	quests, err = decodeQuests(raw)
	if err != nil {
		return nil, false, err
	}
	return quests, true, nil
}

func loadXP(ctx context.Context, s storage.Store) (total int, ok bool, err error) {
	raw, found, err := s.Get(ctx, XPKey)
	if err != nil {
		return 0, false, storeErr(err)
	}
	if !found {
		return 0, false, nil
	}
	total, err = decodeXP(raw)
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}

// storeErr folds an undecodable backing container into errCorrupt so that
// Initialize falls back to defaults instead of failing.
func storeErr(err error) error {
	if errors.Is(err, storage.ErrCorrupt) {
		return fmt.Errorf("%w: %v", errCorrupt, err)
	}
	return err
}

func saveQuests(ctx context.Context, s storage.Store, quests []Quest) error {
	raw, err := encodeQuests(quests)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, QuestsKey, raw); err != nil {
		return fmt.Errorf("save quests: %w", err)
	}
	return nil
}

func saveXP(ctx context.Context, s storage.Store, total int) error {
	if err := s.Set(ctx, XPKey, encodeXP(total)); err != nil {
		return fmt.Errorf("save xp: %w", err)
	}
	return nil
}

// saveAll writes both keys in one batch where the store allows it.
func saveAll(ctx context.Context, s storage.Store, quests []Quest, total int) error {
	raw, err := encodeQuests(quests)
	if err != nil {
		return err
	}
	if err := storage.SetAll(ctx, s, []storage.Entry{
		{Key: QuestsKey, Value: raw},
		{Key: XPKey, Value: encodeXP(total)},
	}); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}
