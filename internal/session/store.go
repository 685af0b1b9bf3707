// Package session persists the profile of the logged-in user in a single
// well-known slot on the device.
package session

import (
	"bytes"
	"context"
	"encoding/json"

	"logistica/pkg/models"

	"go.uber.org/zap"
)

// Key is the storage slot holding the serialized session.
const Key = "@user_data"

type Store interface {
	// Save overwrites the slot. It fails with a StorageError when the
	// underlying storage cannot be written.
	Save(ctx context.Context, s models.Session) error
	// Load returns false when nothing was saved, when the stored value cannot
	// be decoded or when the storage cannot be read. It never fails.
	Load(ctx context.Context) (*models.Session, bool)
	// Clear removes the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// decode is shared by every backend so a corrupt slot behaves exactly like
// an empty one.
func decode(raw []byte, log *zap.Logger) (*models.Session, bool) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Warn("Discarding undecodable session", zap.Error(err))
		return nil, false
	}

	if s.Name == "" && s.Profile == "" {
		log.Warn("Discarding empty session")
		return nil, false
	}

	return &s, true
}
