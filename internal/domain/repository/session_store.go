package repository

import "rotrade/internal/domain/entity"

// SessionStore persists the denormalized profile copy of the currently
// logged-in user so the session survives restarts. It is a read-through
// projection of the user map: only the account operations write it, and only
// startup restore reads it back.
type SessionStore interface {
	Save(user *entity.User) error
	Load() (*entity.User, error)
	Clear() error
}
