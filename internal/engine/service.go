package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"pixelquest/internal/storage"
)

// Board owns the quest list and the experience total. Every mutation is
// written through to the store before it returns, and observers see the new
// state afterwards.
type Board struct {
	store  storage.Store
	logger *slog.Logger
	newID  func() string

	quests  []Quest
	xpTotal int
	level   int

	initialized bool
	observers   map[int]func(State)
	nextObs     int
}

type Option func(*Board)

func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithIDGenerator overrides the quest id source (uuid v4 by default).
func WithIDGenerator(fn func() string) Option {
	return func(b *Board) {
		if fn != nil {
			b.newID = fn
		}
	}
}

func NewBoard(store storage.Store, opts ...Option) *Board {
	b := &Board{
		store:     store,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:     func() string { return uuid.NewString() },
		level:     LevelForTotalXP(0),
		observers: map[int]func(State){},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Initialize loads the board from the store, falling back to the seed quests
// and DefaultTotalXP for absent or corrupt entries, then writes the result back.
func (b *Board) Initialize(ctx context.Context) error {
	if b.initialized {
		return nil
	}

	quests, ok, err := loadQuests(ctx, b.store)
	switch {
	case errors.Is(err, errCorrupt):
		b.logger.Warn("stored quests unusable, using defaults", "key", QuestsKey, "err", err)
		quests = DefaultQuests()
	case err != nil:
		return fmt.Errorf("load quests: %w", err)
	case !ok:
		b.logger.Debug("no stored quests, seeding defaults", "key", QuestsKey)
		quests = DefaultQuests()
	}

	total, ok, err := loadXP(ctx, b.store)
	switch {
	case errors.Is(err, errCorrupt):
		b.logger.Warn("stored xp unusable, using default", "key", XPKey, "err", err)
		total = DefaultTotalXP
	case err != nil:
		return fmt.Errorf("load xp: %w", err)
	case !ok:
		total = DefaultTotalXP
	}

	if err := saveAll(ctx, b.store, quests, total); err != nil {
		return err
	}

	b.quests = quests
	b.setXP(total)
	b.initialized = true
	b.logger.Debug("board initialized", "quests", len(b.quests), "xp", b.xpTotal, "level", b.level)
	b.notify()
	return nil
}

// Reset replaces the board with the seed state.
func (b *Board) Reset(ctx context.Context) error {
	quests := DefaultQuests()
	if err := saveAll(ctx, b.store, quests, DefaultTotalXP); err != nil {
		return err
	}
	b.quests = quests
	b.setXP(DefaultTotalXP)
	b.initialized = true
	b.logger.Info("board reset to defaults")
	b.notify()
	return nil
}

func (b *Board) XPTotal() int { return b.xpTotal }
func (b *Board) Level() int   { return b.level }

// Progress returns the XP earned inside the current level.
func (b *Board) Progress() int { return ProgressForTotalXP(b.xpTotal) }

// Get returns a copy of the quest with id.
func (b *Board) Get(id string) (Quest, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return Quest{}, false
	}
	return b.quests[i], true
}

func (b *Board) Snapshot() State {
	return State{
		Quests:   slices.Clone(b.quests),
		XPTotal:  b.xpTotal,
		Level:    b.level,
		Progress: ProgressForTotalXP(b.xpTotal),
	}
}

// Subscribe registers fn to run after every successful mutation.
func (b *Board) Subscribe(fn func(State)) (unsubscribe func()) {
	id := b.nextObs
	b.nextObs++
	b.observers[id] = fn
	return func() { delete(b.observers, id) }
}

func (b *Board) notify() {
	if len(b.observers) == 0 {
		return
	}
	snap := b.Snapshot()
	ids := make([]int, 0, len(b.observers))
	for id := range b.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		b.observers[id](snap)
	}
}

// setXP is the only writer of xpTotal; it keeps the cached level in step.
func (b *Board) setXP(total int) {
	if total < 0 {
		total = 0
	}
	b.xpTotal = total
	b.level = LevelForTotalXP(total)
}

func (b *Board) indexOf(id string) int {
	return slices.IndexFunc(b.quests, func(q Quest) bool { return q.ID == id })
}
