// Package catalog holds the activity catalog: the seed data, the
// in-memory store that owns it for the process lifetime, and the
// optional Redis snapshot cache in front of listings.
package catalog

import (
	"mergington-activities/internal/models"
)

// Store is the sole owner of the mutable catalog. It is a pure data
// holder: no enrollment rules live here, only exact-key lookups and
// roster mutation primitives. Callers (the enrollment service) decide
// when a mutation is legal and serialize access.
type Store struct {
	seed    models.Catalog
	catalog models.Catalog
}

// NewStore builds a store seeded from the given catalog. The seed is
// kept aside so Reset can restore the initial state between test runs.
func NewStore(seed models.Catalog) *Store {
	return &Store{
		seed:    seed.Clone(),
		catalog: seed.Clone(),
	}
}

// GetAll returns the live catalog mapping.
func (s *Store) GetAll() models.Catalog {
	return s.catalog
}

// Get returns the activity under the exact name, or nil when absent.
// Lookups are case-sensitive, spaces included.
func (s *Store) Get(name string) *models.Activity {
	return s.catalog[name]
}

// Len returns the number of activities in the catalog.
func (s *Store) Len() int {
	return len(s.catalog)
}

// AddParticipant appends email to the end of the roster, preserving
// registration order. The caller has already checked the duplicate rule.
func (s *Store) AddParticipant(name, email string) {
	if activity := s.catalog[name]; activity != nil {
		activity.Participants = append(activity.Participants, email)
	}
}

// RemoveParticipant removes the single occurrence of email from the
// roster, keeping the order of the remaining entries.
func (s *Store) RemoveParticipant(name, email string) {
	activity := s.catalog[name]
	if activity == nil {
		return
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return
		}
	}
}

// Reset restores the catalog to its seed state.
func (s *Store) Reset() {
	s.catalog = s.seed.Clone()
}
