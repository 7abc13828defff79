package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const gameKeyPrefix = "game:"

// ErrGameNotFound is returned when a game id has no stored record.
var ErrGameNotFound = errors.New("game not found")

// Game is the stored record of one game in progress.
type Game struct {
	ID        string    `json:"id"`
	FEN       string    `json:"fen"`
	Moves     []string  `json:"moves"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameStore wraps BadgerDB for persistent game storage.
type GameStore struct {
	db *badger.DB
}

// OpenStore opens (or creates) the database under dir.
func OpenStore(dir string) (*GameStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GameStore{db: db}, nil
}

// Close closes the database.
func (s *GameStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

// Put saves a game record, stamping UpdatedAt.
func (s *GameStore) Put(g *Game) error {
	g.UpdatedAt = time.Now()
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(g.ID), data)
	})
}

// Get loads a game record by id.
func (s *GameStore) Get(id string) (*Game, error) {
	var g Game
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Delete removes a game record. Deleting a missing id is not an error.
func (s *GameStore) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// List returns the ids of every stored game.
func (s *GameStore) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return ids, err
}
