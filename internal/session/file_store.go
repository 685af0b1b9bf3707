package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	custom_error "logistica/pkg/errors"
	"logistica/pkg/models"

	"go.uber.org/zap"
)

// FileStore keeps the session as a JSON document inside the data directory.
type FileStore struct {
	path string
	log  *zap.Logger
}

func NewFileStore(dir string, log *zap.Logger) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, "session.json"),
		log:  log,
	}
}

func (f *FileStore) Save(_ context.Context, s models.Session) error {
	payload, err := json.Marshal(map[string]models.Session{Key: s})
	if err != nil {
		return &custom_error.StorageError{Op: "save", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return &custom_error.StorageError{Op: "save", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*.json")
	if err != nil {
		return &custom_error.StorageError{Op: "save", Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return &custom_error.StorageError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &custom_error.StorageError{Op: "save", Err: err}
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return &custom_error.StorageError{Op: "save", Err: fmt.Errorf("replace session file: %w", err)}
	}

	f.log.Debug("Session saved", zap.String("path", f.path))
	return nil
}

func (f *FileStore) Load(_ context.Context) (*models.Session, bool) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warn("Unable to read session file", zap.String("path", f.path), zap.Error(err))
		}
		return nil, false
	}

	var slots map[string]json.RawMessage
	if err := json.Unmarshal(raw, &slots); err != nil {
		f.log.Warn("Discarding undecodable session file", zap.String("path", f.path), zap.Error(err))
		return nil, false
	}

	return decode(slots[Key], f.log)
}

func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &custom_error.StorageError{Op: "clear", Err: err}
	}

	f.log.Debug("Session cleared", zap.String("path", f.path))
	return nil
}
