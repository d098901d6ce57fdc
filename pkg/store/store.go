// Package store keeps a history of tagmend runs in a bbolt database.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.tagmend.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

const bucketRuns = "runs"

// Record describes one input processed by tagmend.
type Record struct {
	Name      string    `json:"name" yaml:"name"`
	Time      time.Time `json:"time" yaml:"time"`
	Tags      int       `json:"tags" yaml:"tags"`
	Inserted  int       `json:"inserted" yaml:"inserted"`
	Discarded int       `json:"discarded" yaml:"discarded"`
}

// Store is the run history. It is safe for concurrent use as bbolt is.
type Store struct {
	db *bolt.DB
}

// Open opens the database at the given path, creating it if needed.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRuns))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize store %s: %w", path, err)
	}
	logger.Println("opened", path)
	return &Store{db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// AddRecord adds a record and returns its sequence number.
func (s *Store) AddRecord(r Record) (int, error) {
	value, err := json.Marshal(r)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRuns))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), value)
	})
	return int(seq), err
}

// Records returns all records in the order they were added.
func (s *Store) Records() ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRuns)).ForEach(func(k, v []byte) error {
			var r Record
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("record %d: %w", unmarshalSeq(k), err)
			}
			records = append(records, r)
			return nil
		})
	})
	return records, err
}

// Big-endian keys sort in sequence order.
func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
