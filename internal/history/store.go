package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shogentheone/videograb/internal/model"
)

// File permissions for the history file
const historyFilePermissions = 0644

// Default number of entries returned by Recent
const DefaultRecentCount = 10

// Store is the durable mapping from URL to prior outcomes, shared by all
// concurrent downloads.
type Store interface {
	// IsDownloaded reports whether any entry for the URL succeeded,
	// regardless of later failed retries.
	IsDownloaded(url string) bool

	// Add appends one entry and persists the file
	Add(entry model.HistoryEntry) error

	// Recent returns up to count entries, newest first
	Recent(count int) []model.HistoryEntry

	// Clear empties the history. Individual entries are never deleted.
	Clear() error

	// Claim marks a URL as in flight so the same URL dispatched twice in one
	// batch cannot both pass the already-downloaded check. It returns false
	// if another download already holds the claim.
	Claim(url string) bool

	// Release drops an in-flight claim
	Release(url string)
}

// fileContents is the on-disk schema: {"downloads": [...]}
type fileContents struct {
	Downloads []model.HistoryEntry `json:"downloads"`
}

// FileStore persists history to a JSON file, rewritten in full on each save.
// All read/modify/write cycles are serialized by a mutex.
type FileStore struct {
	path string
	log  *zap.Logger

	mu      sync.Mutex
	entries []model.HistoryEntry
	claims  map[string]struct{}
}

// Open loads the history file. A missing or corrupt file is not fatal: the
// store starts empty and the next save recreates the file.
func Open(path string, log *zap.Logger) *FileStore {
	store := &FileStore{
		path:   path,
		log:    log,
		claims: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read history file, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return store
	}

	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		log.Warn("history file is corrupt, starting empty",
			zap.String("path", path), zap.Error(err))
		return store
	}

	store.entries = contents.Downloads
	return store
}

// IsDownloaded reports whether any entry for the URL has success = true
func (s *FileStore) IsDownloaded(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.URL == url && entry.Success {
			return true
		}
	}
	return false
}

// Add appends an entry and rewrites the file
func (s *FileStore) Add(entry model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	s.entries = append(s.entries, entry)
	return s.persist()
}

// Recent returns up to count entries, newest first
func (s *FileStore) Recent(count int) []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count <= 0 {
		count = DefaultRecentCount
	}
	if count > len(s.entries) {
		count = len(s.entries)
	}

	recent := make([]model.HistoryEntry, 0, count)
	for i := len(s.entries) - 1; i >= len(s.entries)-count; i-- {
		recent = append(recent, s.entries[i])
	}
	return recent
}

// Clear empties the history and rewrites the file
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return s.persist()
}

// Claim marks a URL as in flight
func (s *FileStore) Claim(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, held := s.claims[url]; held {
		return false
	}
	s.claims[url] = struct{}{}
	return true
}

// Release drops an in-flight claim
func (s *FileStore) Release(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.claims, url)
}

// persist rewrites the whole file. Callers must hold the mutex.
func (s *FileStore) persist() error {
	contents := fileContents{Downloads: s.entries}
	if contents.Downloads == nil {
		contents.Downloads = []model.HistoryEntry{}
	}

	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := os.WriteFile(s.path, data, historyFilePermissions); err != nil {
		s.log.Error("failed to write history file",
			zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
