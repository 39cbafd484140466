package dataset

import (
	"sort"
	"sync"

	"dashforge/internal/engine"

	"github.com/rs/zerolog/log"
)

// Store holds in-memory dataset snapshots, partitioned by dataset ID. The
// engine treats every snapshot as read-only for the duration of a render
// pass; Rows hands out a copy of the slice header list so callers can
// filter freely without disturbing the stored order.
type Store struct {
	mu   sync.RWMutex
	data map[string][]engine.Row
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string][]engine.Row)}
}

// Put replaces the snapshot for a dataset ID.
func (s *Store) Put(id string, rows []engine.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = rows
	log.Debug().Str("dataset", id).Int("rows", len(rows)).Msg("Dataset snapshot stored")
}

// Rows returns the snapshot for a dataset ID. The second return is false
// when the dataset is unknown.
func (s *Store) Rows(id string) ([]engine.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.data[id]
	if !ok {
		return nil, false
	}
	out := make([]engine.Row, len(rows))
	copy(out, rows)
	return out, true
}

// IDs returns the known dataset IDs, sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
