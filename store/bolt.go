package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const prefsBucket = "focusflow_prefs"

// BoltBackend stores every key in a single BoltDB bucket.
type BoltBackend struct {
	db *bolt.DB
}

// OpenBolt creates or opens the database at path and locks it.
func OpenBolt(path string) (*BoltBackend, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errFocusRunning
		}

		return nil, errOpenStore.Wrap(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(prefsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenStore.Wrap(err)
	}

	return &BoltBackend{db}, nil
}

func (b *BoltBackend) Get(key string) ([]byte, error) {
	var value []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(prefsBucket)).Get([]byte(key))
		if v != nil {
			// bolt values are only valid for the life of the transaction
			value = append([]byte(nil), v...)
		}

		return nil
	})

	return value, err
}

func (b *BoltBackend) Put(key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(prefsBucket)).Put([]byte(key), value)
	})
}

func (b *BoltBackend) Update(
	key string,
	fn func(old []byte) ([]byte, error),
) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(prefsBucket))

		var old []byte
		if v := bucket.Get([]byte(key)); v != nil {
			old = append([]byte(nil), v...)
		}

		value, err := fn(old)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(key), value)
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
