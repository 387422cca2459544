// Package stub is a self-contained in-memory rendition of the marketplace
// backend, just enough surface for local development and integration tests:
// variant listing feeds, the combined filter endpoint with count-only mode,
// multipart creation, JWT auth with refresh, reservations and messaging. It
// deliberately serves the same heterogeneous record shapes the production
// API does, string prices and legacy field names included.
package stub

import (
	"fmt"
	"strings"
	"sync"
)

// record is a raw listing as served on the wire. Keeping it a plain map
// preserves the heterogeneity the client's normalization layer exists to
// absorb.
type record map[string]interface{}

type Store struct {
	mu           sync.RWMutex
	records      []record
	reservations []record
	threads      []record
	messages     map[string][]record
	nextID       int
}

func NewStore() *Store {
	s := &Store{
		messages: make(map[string][]record),
		nextID:   1000,
	}
	s.records = seedRecords()
	s.threads = seedThreads()
	s.messages = seedMessages()
	s.reservations = seedReservations()
	return s
}

func (s *Store) allocateID() string {
	s.nextID++
	return fmt.Sprintf("%d", s.nextID)
}

// ListByType returns every record whose property_type belongs to the
// resource. The house resource serves both HOUSE and BOARDING.
func (s *Store) ListByType(types ...string) []record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []record
	for _, rec := range s.records {
		t, _ := rec["property_type"].(string)
		for _, want := range types {
			if t == want {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func (s *Store) Get(id string) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if recordID(rec) == id {
			return rec, true
		}
	}
	return nil, false
}

func (s *Store) Insert(rec record, owner string) record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec["id"] = s.allocateID()
	rec["owner"] = owner
	s.records = append(s.records, rec)
	return rec
}

func (s *Store) Update(id string, fields record) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if recordID(rec) == id {
			for k, v := range fields {
				if k != "id" && k != "owner" {
					rec[k] = v
				}
			}
			return rec, true
		}
	}
	return nil, false
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if recordID(rec) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) OwnedBy(owner string, propertyType ...string) []record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []record
	for _, rec := range s.records {
		if rec["owner"] != owner {
			continue
		}
		t, _ := rec["property_type"].(string)
		for _, want := range propertyType {
			if t == want {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func recordID(rec record) string {
	switch id := rec["id"].(type) {
	case string:
		return id
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%v", id), ".0")
	case int:
		return fmt.Sprintf("%d", id)
	default:
		return ""
	}
}
