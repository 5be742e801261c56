package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "store.json"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return fs
}

func TestStoreContract(t *testing.T) {
	backends := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store { return newTestSQLiteStore(t) },
		"file":   func(t *testing.T) Store { return newTestFileStore(t) },
	}

	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
				t.Fatalf("Get(missing) ok=%v err=%v, want false/nil", ok, err)
			}

			if err := s.Set(ctx, "pixel-xp", "70"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, ok, err := s.Get(ctx, "pixel-xp")
			if err != nil || !ok || v != "70" {
				t.Fatalf("Get=%q ok=%v err=%v, want 70", v, ok, err)
			}

			if err := s.Set(ctx, "pixel-xp", "120"); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			if v, _, _ := s.Get(ctx, "pixel-xp"); v != "120" {
				t.Fatalf("Get after overwrite=%q, want 120", v)
			}

			if err := SetAll(ctx, s, []Entry{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}); err != nil {
				t.Fatalf("SetAll: %v", err)
			}
			if v, _, _ := s.Get(ctx, "b"); v != "2" {
				t.Fatalf("Get(b)=%q, want 2", v)
			}

			if err := s.Remove(ctx, "pixel-xp"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, ok, _ := s.Get(ctx, "pixel-xp"); ok {
				t.Fatalf("expected key removed")
			}
			if err := s.Remove(ctx, "never-set"); err != nil {
				t.Fatalf("Remove(absent): %v", err)
			}
		})
	}
}

func TestSQLiteStoreKeys(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	for _, k := range []string{"pixel-xp", "pixel-quests"} {
		if err := s.Set(ctx, k, "x"); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}
	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "pixel-quests" || keys[1] != "pixel-xp" {
		t.Fatalf("Keys=%v", keys)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := NewSQLiteStore(db).Set(ctx, "pixel-xp", "42"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_ = db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db.Close()
	v, ok, err := NewSQLiteStore(db).Get(ctx, "pixel-xp")
	if err != nil || !ok || v != "42" {
		t.Fatalf("Get after reopen=%q ok=%v err=%v", v, ok, err)
	}
}

func TestFileStoreReplacesCorruptFile(t *testing.T) {
	cases := map[string]string{
		"truncated":      "{not json",
		"non-string xp":  `{"pixel-xp":70}`,
		"top-level list": `["pixel-xp"]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "store.json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			fs, err := NewFileStore(path)
			if err != nil {
				t.Fatalf("new file store: %v", err)
			}
			if _, _, err := fs.Get(ctx, "pixel-xp"); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("Get err=%v, want ErrCorrupt", err)
			}

			if err := SetAll(ctx, fs, []Entry{{Key: "pixel-xp", Value: "70"}}); err != nil {
				t.Fatalf("SetAll over corrupt file: %v", err)
			}
			v, ok, err := fs.Get(ctx, "pixel-xp")
			if err != nil || !ok || v != "70" {
				t.Fatalf("Get after rewrite=%q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestResolveDBPath(t *testing.T) {
	got, err := ResolveDBPath("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Fatalf("ResolveDBPath explicit=%q err=%v", got, err)
	}
	def, err := ResolveDBPath("")
	if err != nil {
		t.Fatalf("ResolveDBPath default: %v", err)
	}
	if filepath.Base(def) != ".pixelquest.db" {
		t.Fatalf("default path=%q", def)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	boom := errors.New("boom")
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := upsert(ctx, tx, "pixel-xp", "999"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx err=%v, want boom", err)
	}
	if _, ok, err := s.Get(ctx, "pixel-xp"); err != nil || ok {
		t.Fatalf("rolled back write visible: ok=%v err=%v", ok, err)
	}

	if err := s.SetMany(ctx, []Entry{{Key: "pixel-xp", Value: "70"}, {Key: "pixel-quests", Value: "[]"}}); err != nil {
		t.Fatalf("SetMany after rollback: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "pixel-xp"); !ok || v != "70" {
		t.Fatalf("committed value=%q ok=%v", v, ok)
	}
}
