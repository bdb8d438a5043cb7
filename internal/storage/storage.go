package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// GameOutcome represents how a recorded game ended.
type GameOutcome int

const (
	OutcomeUnfinished GameOutcome = iota
	OutcomeWhiteWin
	OutcomeBlackWin
)

// Preferences stores engine settings that survive across sessions,
// mostly values set through the "setoption" command.
type Preferences struct {
	Debug      bool              `json:"debug"`
	DiagramDir string            `json:"diagram_dir"`
	Options    map[string]string `json:"options"`
	LastUsed   time.Time         `json:"last_used"`
}

// DefaultPreferences returns default engine preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Options:  make(map[string]string),
		LastUsed: time.Now(),
	}
}

// Stats stores cumulative game statistics.
type Stats struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Unfinished int `json:"unfinished"`
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens the database under the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Store, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves engine preferences.
func (s *Store) SavePreferences(prefs *Preferences) error {
	prefs.LastUsed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads engine preferences, returns defaults if not found.
func (s *Store) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SetOption persists a single option under the engine preferences.
func (s *Store) SetOption(name, value string) error {
	prefs, err := s.LoadPreferences()
	if err != nil {
		return err
	}
	if prefs.Options == nil {
		prefs.Options = make(map[string]string)
	}
	prefs.Options[name] = value
	return s.SavePreferences(prefs)
}

// LoadStats loads game statistics, returns empty stats if not found.
func (s *Store) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
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

// saveStats saves game statistics.
func (s *Store) saveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// RecordGame records a completed game and updates statistics.
func (s *Store) RecordGame(outcome GameOutcome) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Games++
	switch outcome {
	case OutcomeWhiteWin:
		stats.WhiteWins++
	case OutcomeBlackWin:
		stats.BlackWins++
	default:
		stats.Unfinished++
	}

	return s.saveStats(stats)
}
