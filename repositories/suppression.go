package repositories

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"encoding/binary"
	stderrors "errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.ISuppressionStore = (*SuppressionRepository)(nil)

// SuppressionRepository keeps mention suppression records across restarts.
// Records expire through the badger TTL, set to the window.
type SuppressionRepository struct {
	db     *badger.DB
	window time.Duration
}

func NewSuppressionRepository(db *badger.DB, window time.Duration) *SuppressionRepository {
	return &SuppressionRepository{db: db, window: window}
}

func suppressionKey(key domain.SuppressionKey) []byte {
	return []byte("mention:" + key.String())
}

// Reserve records now for the key unless a record within the window exists.
// A write conflict means a concurrent reservation won.
func (s *SuppressionRepository) Reserve(key domain.SuppressionKey, now time.Time) (bool, error) {
	reserved := false
	err := s.db.Update(func(txn *badger.Txn) error {
		k := suppressionKey(key)
		item, err := txn.Get(k)
		switch {
		case err == nil:
			last, err := lastNotified(item)
			if err != nil {
				return err
			}
			if now.Sub(last) < s.window {
				return nil
			}
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, uint64(now.UnixNano()))
		if err := txn.SetEntry(badger.NewEntry(k, value).WithTTL(s.window)); err != nil {
			return err
		}
		reserved = true
		return nil
	})
	if stderrors.Is(err, badger.ErrConflict) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return reserved, nil
}

func (s *SuppressionRepository) Release(key domain.SuppressionKey) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(suppressionKey(key))
	})
}

func lastNotified(item *badger.Item) (time.Time, error) {
	var last time.Time
	err := item.Value(func(value []byte) error {
		if len(value) != 8 {
			return nil
		}
		last = time.Unix(0, int64(binary.BigEndian.Uint64(value)))
		return nil
	})
	return last, err
}
