package repositories

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var _ contract.INotificationStore = (*NotificationRepository)(nil)

type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, log: log}
}

func notificationPrefix(userID string) string {
	return fmt.Sprintf("notif:%s:", userID)
}

// CreateNotification persists a notification.
// The key is formatted as "notif:{user_id}:{timestamp_padded}:{uuid}" so a
// prefix scan per user returns notifications in chronological order.
func (n NotificationRepository) CreateNotification(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	if err := ctx.Err(); err != nil {
		return domain.Notification{}, err
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	key := fmt.Sprintf("%s%019d:%s", notificationPrefix(notification.UserID), notification.CreatedAt.UnixNano(), notification.ID)
	bytes, err := json.Marshal(notification)
	if err != nil {
		return domain.Notification{}, err
	}
	err = n.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return domain.Notification{}, errors.NewPersistenceError("store notification", err)
	}
	return notification, nil
}

// ListNotifications returns the latest notifications of a user, newest first.
// A limit of 0 returns them all.
func (n NotificationRepository) ListNotifications(userID string, limit int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := n.db.View(func(txn *badger.Txn) error {
		prefix := []byte(notificationPrefix(userID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts after the greatest possible key of the prefix
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(notifications) == limit {
				n.log.Debug(fmt.Sprintf("Maximum of %d notifications reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var notification domain.Notification
				if err := json.Unmarshal(value, &notification); err != nil {
					return err
				}
				notifications = append(notifications, notification)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return notifications, err
}
