package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	keyPrefixGame  = "game:"
	keyEngineConf  = "engine_config"
	keyPlayerStats = "stats"
)

// GameRecord is one completed or in-progress game, keyed by ID, persisted so
// a Hub session can resume after a restart.
type GameRecord struct {
	ID        string    `json:"id"`
	Variant   string    `json:"variant"`
	StartFEN  string     `json:"start_fen"`
	PDN       string    `json:"pdn"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EngineConfig is the persisted tuning the Hub applies to every Engine it
// builds, surviving process restarts.
type EngineConfig struct {
	DepthLimit  int           `json:"depth_limit"`
	TimeLimit   time.Duration `json:"time_limit"`
	TableSizeMB int           `json:"table_size_mb"`
}

// PlayerStats tracks wins/losses/draws across games, mirroring the
// teacher's GameStats.
type PlayerStats struct {
	GamesPlayed int `json:"games_played"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Draws       int `json:"draws"`
}

// Store wraps BadgerDB for persistent storage of game records and engine
// configuration.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) the BadgerDB database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveGame upserts a game record.
func (s *Store) SaveGame(g *GameRecord) error {
	g.UpdatedAt = time.Now()
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefixGame+g.ID), data)
	})
}

// LoadGame fetches a game record by ID.
func (s *Store) LoadGame(id string) (*GameRecord, error) {
	var g GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefixGame + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store: load game %s: %w", id, err)
	}
	return &g, nil
}

// ListGames returns every stored game record.
func (s *Store) ListGames() ([]*GameRecord, error) {
	var out []*GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefixGame)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var g GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &g)
			}); err != nil {
				return err
			}
			out = append(out, &g)
		}
		return nil
	})
	return out, err
}

// SaveEngineConfig persists cfg for reuse across Hub restarts.
func (s *Store) SaveEngineConfig(cfg EngineConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyEngineConf), data)
	})
}

// LoadEngineConfig loads the persisted engine configuration, returning
// defaultCfg if none was ever saved.
func (s *Store) LoadEngineConfig(defaultCfg EngineConfig) (EngineConfig, error) {
	cfg := defaultCfg
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyEngineConf))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cfg)
		})
	})
	return cfg, err
}

// RecordResult updates the running player statistics after a game with
// PDN result res ("1-0", "0-1", "1/2-1/2") from the perspective of White.
func (s *Store) RecordResult(res string) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.GamesPlayed++
	switch res {
	case "1-0":
		stats.Wins++
	case "0-1":
		stats.Losses++
	case "1/2-1/2":
		stats.Draws++
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPlayerStats), data)
	})
}

// LoadStats loads player statistics, returning zero-valued stats if none
// were ever recorded.
func (s *Store) LoadStats() (*PlayerStats, error) {
	stats := &PlayerStats{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPlayerStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	return stats, err
}
