// Package cache keeps downloaded word lists on disk with a JSON index.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const indexName = "index.json"

// Entry describes one cached word list
type Entry struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	SHA256    string    `json:"sha256"`
	Size      int64     `json:"size"`
	Timestamp time.Time `json:"timestamp"`
	File      string    `json:"file"` // Body file name inside the cache dir
}

// Fresh reports whether the entry is younger than ttl
func (e *Entry) Fresh(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.Timestamp) < ttl
}

// Cache manages downloaded bodies and their index
type Cache struct {
	dir     string
	mu      sync.RWMutex
	entries map[string]*Entry
	now     func() time.Time
}

// New creates a cache rooted at dir, loading an existing index if present
func New(dir string) (*Cache, error) {
	c := &Cache{
		dir:     dir,
		entries: make(map[string]*Entry),
		now:     time.Now,
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if err := c.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return c, nil
}

// Dir returns the cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// Get retrieves an index entry
func (c *Cache) Get(name string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[name]
	return entry, found
}

// Read returns the cached body for name
func (c *Cache) Read(name string) ([]byte, *Entry, error) {
	entry, found := c.Get(name)
	if !found {
		return nil, nil, os.ErrNotExist
	}

	data, err := os.ReadFile(filepath.Join(c.dir, entry.File))
	if err != nil {
		return nil, nil, err
	}

	if sum := hashOf(data); sum != entry.SHA256 {
		return nil, nil, fmt.Errorf("cached body for %s is corrupt", name)
	}

	return data, entry, nil
}

// Store writes a body and records it in the index
func (c *Cache) Store(name, url string, data []byte) (*Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{
		Name:      name,
		URL:       url,
		SHA256:    hashOf(data),
		Size:      int64(len(data)),
		Timestamp: c.now(),
		File:      bodyFile(name),
	}

	if err := os.WriteFile(filepath.Join(c.dir, entry.File), data, 0644); err != nil {
		return nil, err
	}

	// Indexes written by older versions may name the body differently
	if prev, found := c.entries[name]; found && prev.File != entry.File && !c.fileInUse(prev.File, name) {
		_ = os.Remove(filepath.Join(c.dir, prev.File))
	}

	c.entries[name] = entry
	return entry, c.persist()
}

// Delete removes an entry and its body
func (c *Cache) Delete(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.entries[name]
	if !found {
		return nil
	}
	delete(c.entries, name)
	if !c.fileInUse(entry.File, "") {
		_ = os.Remove(filepath.Join(c.dir, entry.File))
	}
	return c.persist()
}

// Clear removes all entries and bodies
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.entries {
		_ = os.Remove(filepath.Join(c.dir, entry.File))
	}
	c.entries = make(map[string]*Entry)
	return c.persist()
}

// Len returns the number of cached word lists
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// fileInUse reports whether an entry other than except points at file
func (c *Cache) fileInUse(file, except string) bool {
	for name, entry := range c.entries {
		if name != except && entry.File == file {
			return true
		}
	}
	return false
}

// bodyFile derives the body file from the entry name so that lists with
// identical content never share a file
func bodyFile(name string) string {
	return hashOf([]byte(name))[:16] + ".cwl"
}

func hashOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// load reads the index from disk
func (c *Cache) load() error {
	data, err := os.ReadFile(filepath.Join(c.dir, indexName))
	if err != nil {
		return err
	}

	var entries map[string]*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	if entries == nil {
		entries = make(map[string]*Entry)
	}

	c.entries = entries
	return nil
}

// persist writes the index to disk
func (c *Cache) persist() error {
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(c.dir, indexName), data, 0600)
}
