// Package scenario holds the single-slot saved scenario for a session.
package scenario

import (
	"time"

	"beven/internal/model"
)

// Store owns at most one saved scenario. Saving replaces the slot
// wholesale; the stored copy is independent of the caller's values.
// The store holds no comparison logic; callers juxtapose Current()
// against their live results.
type Store struct {
	saved *model.Scenario
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Save captures a deep copy of the parameters and result, replacing any
// previously saved scenario. Mutating the caller's values afterwards does
// not affect the saved copy, and vice versa.
func (s *Store) Save(p model.BusinessParameters, r model.ProjectionResult) {
	s.saved = &model.Scenario{
		Params:  p.Clone(),
		Result:  r.Clone(),
		SavedAt: time.Now(),
	}
}

// Current returns a copy of the saved scenario, or false if none exists.
func (s *Store) Current() (model.Scenario, bool) {
	if s.saved == nil {
		return model.Scenario{}, false
	}
	return model.Scenario{
		Params:  s.saved.Params.Clone(),
		Result:  s.saved.Result.Clone(),
		SavedAt: s.saved.SavedAt,
	}, true
}

// Clear empties the slot.
func (s *Store) Clear() {
	s.saved = nil
}
