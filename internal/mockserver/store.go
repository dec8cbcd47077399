package mockserver

import (
	"net/http"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store holds the active mappings and the baseline they reset to.
type Store struct {
	mu       sync.RWMutex
	mappings []Mapping
	baseline []Mapping
	seq      int
}

func NewStore() *Store {
	return &Store{}
}

// Add stores m, assigning an id and the default priority when missing.
func (s *Store) Add(m Mapping) Mapping {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(m)
}

func (s *Store) add(m Mapping) Mapping {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Priority == 0 {
		m.Priority = DefaultPriority
	}

	s.seq++
	m.seq = s.seq

	for i, existing := range s.mappings {
		if existing.ID == m.ID {
			s.mappings[i] = m
			return m
		}
	}

	s.mappings = append(s.mappings, m)
	return m
}

// SetBaseline replaces all mappings with ms and remembers them as the state
// Reset returns to.
func (s *Store) SetBaseline(ms []Mapping) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mappings = nil
	for _, m := range ms {
		s.add(m)
	}
	s.baseline = append([]Mapping(nil), s.mappings...)
}

// Reset drops every mapping added since the baseline was loaded.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mappings = append([]Mapping(nil), s.baseline...)
}

// Clear removes all mappings, baseline included.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mappings = nil
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.mappings {
		if m.ID == id {
			s.mappings = append(s.mappings[:i], s.mappings[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Get(id string) (Mapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.mappings {
		if m.ID == id {
			return m, true
		}
	}
	return Mapping{}, false
}

// List returns mappings newest first, the order WireMock lists them in.
func (s *Store) List() []Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := append([]Mapping(nil), s.mappings...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].seq > list[j].seq
	})
	return list
}

// Match finds the mapping for r: lowest priority number first, then the
// most recently added.
func (s *Store) Match(r *http.Request) (Mapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best  Mapping
		found bool
	)

	for _, m := range s.mappings {
		if !m.Request.matches(r) {
			continue
		}

		if !found || m.Priority < best.Priority || (m.Priority == best.Priority && m.seq > best.seq) {
			best = m
			found = true
		}
	}

	return best, found
}
