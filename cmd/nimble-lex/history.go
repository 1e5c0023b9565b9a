package main

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"
)

var runsBucket = []byte("runs")

// RunRecord is one scanned file in one invocation of the tool.
type RunRecord struct {
	Run         string    `json:"run"`
	Time        time.Time `json:"time"`
	File        string    `json:"file"`
	Tokens      int       `json:"tokens"`
	Errors      int       `json:"errors"`
	Fingerprint uint64    `json:"fingerprint"`
}

// historyStore appends run records to a bolt database so results can be
// compared across invocations.
type historyStore struct {
	db *bolt.DB
}

func openHistory(path string) (*historyStore, error) {
	db, err := bolt.Open(path, 0640, nil)
	if err != nil {
		return nil, err
	}
	return &historyStore{db: db}, nil
}

func (h *historyStore) Close() error {
	return h.db.Close()
}

// Append stores the record under the bucket sequence number, so List
// replays runs oldest first.
func (h *historyStore) Append(r RunRecord) error {
	return h.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(runsBucket)
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		value, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return b.Put(itob(seq), value)
	})
}

// List returns every recorded run, oldest first.
func (h *historyStore) List() ([]RunRecord, error) {
	var records []RunRecord
	err := h.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(runsBucket)
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			var r RunRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			records = append(records, r)
			return nil
		})
	})
	return records, err
}

func listHistory(path string) ([]RunRecord, error) {
	store, err := openHistory(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.List()
}

func itob(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}
