// Package checkpoint stores pairwise results in a bolt database, so an
// interrupted run can be resumed without recomputing finished pairs.
package checkpoint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/orthologr/gestimator/pairwise"
)

// log is the global logging variable.
var log = logging.MustGetLogger("checkpoint")

// Store reads and writes pairwise results for one alignment. Results
// of different alignments (or options) are kept in different buckets.
type Store struct {
	db     *bolt.DB
	bucket []byte
	hits   int
}

// Digest returns a bucket name identifying an analysis. All the parts
// (e.g. alignment and options) are hashed.
func Digest(parts ...string) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return []byte(hex.EncodeToString(h.Sum(nil)))
}

// Open opens (or creates) a checkpoint database.
func Open(fileName string, bucket []byte) (*Store, error) {
	db, err := bolt.Open(fileName, 0666, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	log.Infof("Opened checkpoint database %s (bucket %.12s)", fileName, bucket)
	return &Store{db: db, bucket: bucket}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if s.hits > 0 {
		log.Noticef("Reused %d results from checkpoint", s.hits)
	}
	return s.db.Close()
}

// pairKey is independent of the order of the names.
func pairKey(query, subject string) (key []byte, swapped bool) {
	if subject < query {
		query, subject = subject, query
		swapped = true
	}
	return []byte(query + "\x00" + subject), swapped
}

// Get returns a stored result or nil if the pair is not in the
// database.
func (s *Store) Get(query, subject string) (*pairwise.Result, error) {
	if s == nil {
		return nil, nil
	}
	key, swapped := pairKey(query, subject)
	b, err := LoadData(s.db, s.bucket, key)
	if err != nil || b == nil {
		return nil, err
	}
	var r pairwise.Result
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	if swapped {
		r = r.Swap()
	}
	s.hits++
	log.Debugf("Checkpoint hit: %s vs %s", query, subject)
	return &r, nil
}

// Put stores a result.
func (s *Store) Put(r pairwise.Result) error {
	if s == nil {
		return nil
	}
	key, swapped := pairKey(r.Query, r.Subject)
	if swapped {
		r = r.Swap()
	}
	data, err := json.Marshal(r)
	if err != nil {
		log.Error("Error serializing checkpoint", err)
		return err
	}
	err = SaveData(s.db, s.bucket, key, data)
	if err != nil {
		log.Error("Error saving checkpoint", err)
	}
	return err
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, bucket, key, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads data from bolt database. It returns nil if there is
// no such key.
func LoadData(db *bolt.DB, bucket, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
