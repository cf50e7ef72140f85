package manifest

import (
	"os"
	"sync"
	"time"
)

// Store caches parsed manifest documents keyed by (path, shape)
// and invalidated by the file's modification time. It is an
// explicit injectable value rather than hidden package state so
// tests and callers can construct isolated instances.
//
// Entries live for the store's lifetime and are only replaced by
// overwrite; losing the store costs recomputation, never
// correctness. A single mutex serializes the read-modify-write of
// entries, so two concurrent misses cannot leave a stale
// modification time behind a newer document.
type Store struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry

	// readFile is swappable in tests to count disk reads.
	readFile func(string) ([]byte, error)
}

type cacheKey struct {
	path  string
	shape Shape
}

type cacheEntry struct {
	modTime time.Time
	doc     *Document
}

// NewStore creates an empty parse cache.
func NewStore() *Store {
	return &Store{
		entries:  make(map[cacheKey]cacheEntry),
		readFile: os.ReadFile,
	}
}

// ReadParsed returns the requested view of the manifest at path.
//
// When a cached entry exists and the file's current modification
// time equals the stored one, the cached document is returned
// without touching the file contents. Otherwise the file is read
// and parsed, and the entry is overwritten. A parse failure
// returns a *ParseError and leaves any previous entry untouched,
// so external edits to the file are always observed on the next
// successful lookup.
func (s *Store) ReadParsed(path string, shape Shape) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	modTime := info.ModTime()
	key := cacheKey{path: path, shape: shape}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && entry.modTime.Equal(modTime) {
		return entry.doc, nil
	}

	data, err := s.readFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parseShape(path, data, shape)
	if err != nil {
		return nil, err
	}
	s.entries[key] = cacheEntry{modTime: modTime, doc: doc}
	return doc, nil
}

// Len reports the number of cached entries. Used by diagnostics
// and tests.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
