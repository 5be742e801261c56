package root

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"pixelquest/internal/config"
	"pixelquest/internal/engine"
	"pixelquest/internal/storage"
)

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFrom(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if flags.store != "" {
		cfg.Store = flags.store
	}
	if flags.path != "" {
		cfg.Path = flags.path
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return storage.NewMemoryStore(), func() {}, nil
	case config.StoreFile:
		path := cfg.Path
		if path == "" {
			p, err := storage.DefaultFilePath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		fs, err := storage.NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	case config.StoreSQLite:
		path, err := storage.ResolveDBPath(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		db, err := storage.Open(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewSQLiteStore(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

type keyLister interface {
	Keys(ctx context.Context) ([]string, error)
}

// openBoard opens the configured store and loads the board from it.
// quiet discards logs (the TUI owns the terminal).
func openBoard(ctx context.Context, quiet bool) (*engine.Board, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var logOut io.Writer = os.Stderr
	if quiet {
		logOut = io.Discard
	}
	logger := newLogger(logOut, cfg.SlogLevel())

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("store opened", "backend", cfg.Store, "path", cfg.Path)
	if kl, ok := store.(keyLister); ok {
		if keys, err := kl.Keys(ctx); err == nil {
			logger.Debug("stored keys", "keys", keys)
		}
	}

	board := engine.NewBoard(store, engine.WithLogger(logger))
	board.Subscribe(func(s engine.State) {
		logger.Debug("board saved", "quests", len(s.Quests), "xp", s.XPTotal, "level", s.Level)
	})
	if err := board.Initialize(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return board, cleanup, nil
}
