// Package repositories holds the badger-backed local collaborators: the user
// directory, the notification store and the mention suppression records.
package repositories

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/errors"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const userPrefix = "user:"

var _ contract.IUserDirectory = (*UserRepository)(nil)

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// DiskUser is the stored form of a user record.
type DiskUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUser persists a new user record keyed by its id.
func (u UserRepository) CreateUser(user domain.User) error {
	id := strings.TrimSpace(user.ID)
	if id == "" {
		return errors.NewValidationError("user", fmt.Errorf("id is required"))
	}
	data, err := json.Marshal(DiskUser{ID: id, Name: user.Name, Avatar: user.Avatar, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return u.db.Update(func(txn *badger.Txn) error {
		key := []byte(userPrefix + id)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})
}

// FindUser returns errors.ErrUserNotFound when no record exists for userID.
func (u UserRepository) FindUser(_ context.Context, userID string) (domain.User, error) {
	var disk DiskUser
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, errors.NewPersistenceError("find user", err)
	}
	return domain.User{ID: disk.ID, Name: disk.Name, Avatar: disk.Avatar}, nil
}
