// Package store persists the saved-script collection in a single JSON slot
// on disk. The slot is the only durable state in the system; its layout is
// one JSON array of saved scripts, most recently saved first.
//
// Storage faults never propagate: an absent, unreadable, or malformed slot
// loads as an empty collection, and write failures leave the in-memory
// collection authoritative for the session.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/historyquest/historyquest/internal/script"
)

// SlotName is the file name of the storage slot inside the data directory.
const SlotName = "historyquest_scripts.json"

// Store owns the in-memory saved-script collection and mirrors every change
// to the storage slot.
type Store struct {
	path string

	mu      sync.Mutex
	scripts []script.SavedScript
}

// Open loads the collection from the slot under dataDir. Any read or parse
// fault degrades to an empty collection.
func Open(dataDir string) *Store {
	s := &Store{path: filepath.Join(dataDir, SlotName)}
	s.scripts = s.load()
	return s
}

// load reads the slot. It returns an empty collection on any fault or when
// the stored value is not an array.
func (s *Store) load() []script.SavedScript {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []script.SavedScript{}
	}
	var scripts []script.SavedScript
	if err := json.Unmarshal(data, &scripts); err != nil {
		log.Printf("store: ignoring unparsable slot %s: %v", s.path, err)
		return []script.SavedScript{}
	}
	if scripts == nil {
		scripts = []script.SavedScript{}
	}
	return scripts
}

// List returns a copy of the collection, most recently saved first.
func (s *Store) List() []script.SavedScript {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]script.SavedScript, len(s.scripts))
	copy(out, s.scripts)
	return out
}

// Get returns the saved script with the given id.
func (s *Store) Get(id string) (script.SavedScript, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sc := range s.scripts {
		if sc.ID == id {
			return sc, true
		}
	}
	return script.SavedScript{}, false
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scripts)
}

// Save assigns a fresh identity to doc, prepends it to the collection, and
// persists. Identity is assigned exactly once, here; two structurally
// identical documents get distinct ids.
func (s *Store) Save(doc script.Script) script.SavedScript {
	saved := script.SavedScript{
		ID:        NewID(),
		CreatedAt: time.Now().UTC(),
		Script:    doc,
	}

	s.mu.Lock()
	s.scripts = append([]script.SavedScript{saved}, s.scripts...)
	s.persistLocked()
	s.mu.Unlock()

	return saved
}

// Delete removes the script with the given id and persists. Deleting an
// unknown id is a no-op; the return value reports whether anything changed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.scripts {
		if sc.ID == id {
			s.scripts = append(s.scripts[:i], s.scripts[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// persistLocked writes the whole collection to the slot. Write failures are
// logged and swallowed; in-memory state stays authoritative. The write is
// atomic: a temp file is renamed over the slot so a crash mid-write cannot
// leave a truncated array.
func (s *Store) persistLocked() {
	data, err := json.MarshalIndent(s.scripts, "", "  ")
	if err != nil {
		log.Printf("store: marshal collection: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("store: create data dir: %v", err)
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("store: write slot: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		log.Printf("store: replace slot: %v", err)
	}
}

// NewID returns a save-time identifier: the current unix-millisecond
// timestamp in base 36 plus a random suffix. Collisions are vanishingly
// unlikely; global uniqueness is not required.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}
