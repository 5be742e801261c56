package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// FileStore keeps all keys in a single JSON object file.
// No caching: every call locks, reads, and (for writes) rewrites the file.
type FileStore struct {
	filePath string
}

// DefaultFilePath returns the default file store location.
func DefaultFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".pixelquest", "store.json"), nil
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{filePath: path}, nil
}

func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	var (
		v  string
		ok bool
	)
	err := f.withFileLock(func(file *os.File) error {
		data, err := readEntries(file)
		if err != nil {
			return err
		}
		v, ok = data[key]
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return v, ok, nil
}

func (f *FileStore) Set(_ context.Context, key string, value string) error {
	return f.update(func(data map[string]string) {
		data[key] = value
	})
}

func (f *FileStore) SetMany(_ context.Context, entries []Entry) error {
	return f.update(func(data map[string]string) {
		for _, e := range entries {
			data[e.Key] = e.Value
		}
	})
}

func (f *FileStore) Remove(_ context.Context, key string) error {
	return f.update(func(data map[string]string) {
		delete(data, key)
	})
}

// update runs lock → read → mutate → write → unlock. An undecodable file is
// replaced rather than merged into.
func (f *FileStore) update(fn func(map[string]string)) error {
	return f.withFileLock(func(file *os.File) error {
		data, err := readEntries(file)
		if errors.Is(err, ErrCorrupt) {
			data = map[string]string{}
		} else if err != nil {
			return err
		}
		fn(data)
		return writeEntries(file, data)
	})
}

func (f *FileStore) withFileLock(fn func(*os.File) error) error {
	file, err := os.OpenFile(f.filePath, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open store file: %w", err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock store file: %w", err)
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}

func readEntries(file *os.File) (map[string]string, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek store file: %w", err)
	}
	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: decode store file: %v", ErrCorrupt, err)
	}
	return data, nil
}

func writeEntries(file *os.File, data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncate store file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek store file: %w", err)
	}
	if _, err := file.Write(raw); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return file.Sync()
}
