package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"rotrade/internal/domain/entity"
	"rotrade/internal/domain/repository"
	"rotrade/pkg/errors"
)

const sessionFile = "session.json"

// fsSessionStore keeps the current-user profile copy in its own file next to
// the snapshot. The session record lives apart from the main blob so logout
// never rewrites marketplace state.
type fsSessionStore struct {
	path string
}

func NewFSSessionStore(dataDir string) (repository.SessionStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Internal("Failed to create data directory", err)
	}

	return &fsSessionStore{
		path: filepath.Join(dataDir, sessionFile),
	}, nil
}

func (s *fsSessionStore) Save(user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Internal("Failed to serialize session", err)
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Internal("Failed to write session", err)
	}

	return nil
}

func (s *fsSessionStore) Load() (*entity.User, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, errors.NotFound("Session", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to read session", err)
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, errors.Internal("Failed to parse session", err)
	}

	return &user, nil
}

func (s *fsSessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Internal("Failed to clear session", err)
	}
	return nil
}
