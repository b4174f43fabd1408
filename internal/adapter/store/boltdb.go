package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"perturb/internal/domain"
)

var (
	bucketSynsets = []byte("synsets")
	bucketStats   = []byte("stats")
	keyStats      = []byte("lexicon_stats")
)

// BoltLexicon is a compiled lexicon backed by bbolt. It is written once
// by the compile command and afterwards serves read-only synset lookups,
// so transform runs skip parsing the plaintext resource.
type BoltLexicon struct {
	db *bbolt.DB
}

func NewBoltLexicon(path string) (*BoltLexicon, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSynsets, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltLexicon{db: db}, nil
}

func (s *BoltLexicon) Close() error {
	return s.db.Close()
}

// PutSynsets stores the full sense list for a word, replacing any
// previous entry.
func (s *BoltLexicon) PutSynsets(word string, senses []domain.Synset) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(senses)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketSynsets).Put([]byte(word), data)
	})
}

// Synsets returns up to max senses for word. An unknown word yields nil.
func (s *BoltLexicon) Synsets(word string, max int) ([]domain.Synset, error) {
	var senses []domain.Synset
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSynsets).Get([]byte(word))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &senses)
	})
	if err != nil {
		return nil, err
	}
	if max >= 0 && len(senses) > max {
		senses = senses[:max]
	}
	return senses, nil
}

func (s *BoltLexicon) PutStats(stats domain.LexiconStats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

func (s *BoltLexicon) GetStats() (domain.LexiconStats, error) {
	var stats domain.LexiconStats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return fmt.Errorf("lexicon not compiled: no stats entry")
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

// Clear drops all compiled entries, for recompilation.
func (s *BoltLexicon) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSynsets, bucketStats} {
			if err := tx.DeleteBucket(b); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return err
			}
		}
		return nil
	})
}
