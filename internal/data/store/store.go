package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/mhowell/go-timetrack/internal/core/model"
	"github.com/mhowell/go-timetrack/internal/core/settings"
	"github.com/mhowell/go-timetrack/internal/util"
)

// Store reads and writes the two whole-file JSON documents the engine
// works over: data.json (session map) and settings.json. Writes are
// plain whole-file overwrites; the recording host is single-threaded
// and last writer wins.
type Store struct {
	dataPath     string
	settingsPath string

	mu        sync.Mutex
	cached    map[string]model.Session
	cachedSig fileSig
}

type fileSig struct {
	size    int64
	modTime int64
}

// New creates a store over the given file paths.
func New(dataPath, settingsPath string) *Store {
	return &Store{
		dataPath:     dataPath,
		settingsPath: settingsPath,
	}
}

// DataPath returns the session store path.
func (s *Store) DataPath() string {
	return s.dataPath
}

// SettingsPath returns the settings store path.
func (s *Store) SettingsPath() string {
	return s.settingsPath
}

// LoadSessions reads the full session map. A missing data file is an
// empty store, not an error. Re-reads are skipped while the file's
// size and modtime are unchanged since the previous load.
func (s *Store) LoadSessions() (map[string]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.dataPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.LogDebugf("Data file %s does not exist, returning empty store", s.dataPath)
			return map[string]model.Session{}, nil
		}
		return nil, fmt.Errorf("stat data file: %w", err)
	}

	sig := fileSig{size: info.Size(), modTime: info.ModTime().UnixNano()}
	if s.cached != nil && sig == s.cachedSig {
		return s.cached, nil
	}

	raw, err := os.ReadFile(s.dataPath)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	sessions := make(map[string]model.Session)
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &sessions); err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", s.dataPath, err)
		}
	}

	util.LogDebugf("Loaded %d sessions from %s", len(sessions), s.dataPath)
	s.cached = sessions
	s.cachedSig = sig
	return sessions, nil
}

// SaveSessions overwrites the session store and invalidates the reload
// cache. Used by the dummy-data generator; the recording subsystem owns
// this file in normal operation.
func (s *Store) SaveSessions(sessions map[string]model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := sonic.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	if err := os.WriteFile(s.dataPath, raw, 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	s.cached = nil
	return nil
}

// LoadSettings reads settings.json, falling back to the defaults when
// the file does not exist yet.
func (s *Store) LoadSettings() (settings.Settings, error) {
	raw, err := os.ReadFile(s.settingsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.LogDebugf("Settings file %s does not exist, using defaults", s.settingsPath)
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var cfg settings.Settings
	if err := sonic.Unmarshal(raw, &cfg); err != nil {
		return settings.Settings{}, fmt.Errorf("parse settings file %s: %w", s.settingsPath, err)
	}
	return cfg, nil
}

// SaveSettings overwrites settings.json. Satisfies settings.Persister.
func (s *Store) SaveSettings(cfg settings.Settings) error {
	raw, err := sonic.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.settingsPath, raw, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
