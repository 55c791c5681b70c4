package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"

	"github.com/lensline/eyewear-api/internal/models"
)

// Bucket and key naming for the single backup slot.
var (
	backupBucket = []byte("catalog")
	backupKey    = []byte("products")
)

// BackupStore persists the last known-good full product list in a single
// slot of an embedded key-value store. It is advisory: persistence failures
// are logged, never surfaced, because the in-memory result already handed to
// the caller must stay valid.
type BackupStore struct {
	db *bbolt.DB
}

// OpenBackup opens (creating if needed) the backup database at path.
func OpenBackup(path string) (*BackupStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open backup store: %w", err)
	}
	return &BackupStore{db: db}, nil
}

// Close releases the underlying store.
func (s *BackupStore) Close() error {
	return s.db.Close()
}

// Load returns the last persisted backup. When no backup exists yet, the
// bundled sample set seeds the result; the seed itself is not persisted
// until the next successful write-through.
func (s *BackupStore) Load() []models.Product {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(backupBucket)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get(backupKey); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("backup read failed, serving sample catalog")
		return SampleProducts()
	}
	if raw == nil {
		return SampleProducts()
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Warn().Err(err).Msg("backup slot corrupted, serving sample catalog")
		return SampleProducts()
	}
	return products
}

// Save replaces the backup slot with the given full product list. Failures
// are swallowed after logging.
func (s *BackupStore) Save(products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		log.Warn().Err(err).Msg("backup marshal failed")
		return
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(backupBucket)
		if err != nil {
			return err
		}
		return bucket.Put(backupKey, data)
	})
	if err != nil {
		log.Warn().Err(err).Int("products", len(products)).Msg("backup write failed")
	}
}
