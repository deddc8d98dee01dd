// Package localstore is a single-file storage driver on top of bolt. Each
// entity type gets its own bucket of gob-encoded records keyed by id.
package localstore

import (
	"bytes"
	"encoding/gob"
	"sort"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"
)

var (
	usersBucket       = []byte("users")
	usersByEmail      = []byte("users_by_email")
	notebooksBucket   = []byte("notebooks")
	annotationsBucket = []byte("annotations")
)

type Store struct {
	db *bolt.DB
}

// Open creates the file if needed and makes sure every bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{usersBucket, usersByEmail, notebooksBucket, annotationsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close the database and release the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// record pairs a value with its insertion sequence so listings keep creation order.
type record[T any] struct {
	Seq   uint64
	Value T
}

func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func get[T any](tx *bolt.Tx, bucket []byte, id uuid.UUID) (*record[T], error) {
	raw := tx.Bucket(bucket).Get(id[:])
	if raw == nil {
		return nil, nil
	}
	var r record[T]
	if err := decode(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// put keeps the sequence of an existing record and draws a new one otherwise.
func put[T any](tx *bolt.Tx, bucket []byte, id uuid.UUID, v T) error {
	b := tx.Bucket(bucket)

	existing, err := get[T](tx, bucket, id)
	if err != nil {
		return err
	}

	var seq uint64
	if existing != nil {
		seq = existing.Seq
	} else if seq, err = b.NextSequence(); err != nil {
		return err
	}

	raw, err := encode(record[T]{Seq: seq, Value: v})
	if err != nil {
		return err
	}
	return b.Put(id[:], raw)
}

func all[T any](tx *bolt.Tx, bucket []byte) ([]*T, error) {
	var records []record[T]
	err := tx.Bucket(bucket).ForEach(func(_, raw []byte) error {
		var r record[T]
		if err := decode(raw, &r); err != nil {
			return err
		}
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	values := make([]*T, len(records))
	for i := range records {
		values[i] = &records[i].Value
	}
	return values, nil
}

func exists(tx *bolt.Tx, bucket []byte, id uuid.UUID) bool {
	return tx.Bucket(bucket).Get(id[:]) != nil
}

func remove(tx *bolt.Tx, bucket []byte, id uuid.UUID) error {
	return tx.Bucket(bucket).Delete(id[:])
}
