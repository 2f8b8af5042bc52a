package rulestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/DIMO-Network/messenger-autoresponder/internal/rules"
	"github.com/rs/zerolog"
)

// Store keeps the active rule set in memory and mirrors it to a JSON file.
// Readers get the current snapshot without locking; writers are serialized.
type Store struct {
	path   string
	logger *zerolog.Logger

	writeMu sync.Mutex
	active  atomic.Pointer[rules.RuleSet]
}

// New creates a Store backed by the file at path. The active set starts empty.
func New(path string, logger *zerolog.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
	}
	empty := rules.RuleSet{}
	s.active.Store(&empty)
	return s
}

// Path returns the location of the rules file.
func (s *Store) Path() string {
	return s.path
}

// Rules returns the active rule set. Callers must not modify it.
func (s *Store) Rules() rules.RuleSet {
	return *s.active.Load()
}

// Load reads the rules file and makes its contents the active set.
// A missing file yields an empty set and no error. On any error the active set is unchanged.
func (s *Store) Load() (rules.RuleSet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info().Str("path", s.path).Msg("Rules file not found, starting with empty rules")
			empty := rules.RuleSet{}
			s.swap(empty)
			return empty, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrRulesIO, s.path, err)
	}

	var loaded rules.RuleSet
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrMalformedRules, s.path, err)
	}
	if loaded == nil {
		// a file containing "null"
		return nil, fmt.Errorf("%w: %s does not hold a rules array", ErrMalformedRules, s.path)
	}

	s.swap(loaded)
	s.logger.Info().Str("path", s.path).Int("rule_count", len(loaded)).Msg("Rules loaded from file")
	return loaded, nil
}

// Save replaces the rules file with newRules and, once the file is in place, makes newRules active.
// If writing fails the previous file and the previous active set are left intact.
func (s *Store) Save(newRules rules.RuleSet) error {
	if newRules == nil {
		newRules = rules.RuleSet{}
	}
	snapshot := make(rules.RuleSet, len(newRules))
	for i, rule := range newRules {
		if rule.TriggerKeyword != nil {
			keyword := *rule.TriggerKeyword
			rule.TriggerKeyword = &keyword
		}
		snapshot[i] = rule
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding rules: %w", ErrRulesIO, err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrRulesIO, err)
	}
	s.swap(snapshot)
	s.logger.Info().Str("path", s.path).Int("rule_count", len(snapshot)).Msg("Rules updated")
	return nil
}

func (s *Store) swap(set rules.RuleSet) {
	s.active.Store(&set)
}

// writeFileAtomic writes data to a temporary file next to path, syncs it and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp rules file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp rules file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("syncing temp rules file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp rules file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting rules file mode: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming rules file to %s: %w", path, err)
	}
	success = true

	if parent, err := os.Open(dir); err == nil {
		_ = parent.Sync()
		_ = parent.Close()
	}
	return nil
}
