// Package store records the values collected while parsing a command line.
package store

import (
	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/types"
)

// Entry is one recorded value together with the definition which recorded it
type Entry struct {
	Value      string
	ArgumentID types.ArgumentID
}

// Store maps value ids to their ordered entries
type Store struct {
	entries map[types.ValueID][]Entry
	// present holds value ids which were seen without recording a value
	present map[types.ValueID]types.ArgumentID
}

// New returns an empty Store
func New() *Store {
	return &Store{
		entries: map[types.ValueID][]Entry{},
		present: map[types.ValueID]types.ArgumentID{},
	}
}

// Assign replaces all entries of valueID with a single entry
func (s *Store) Assign(valueID types.ValueID, argID types.ArgumentID, value string) {
	s.entries[valueID] = []Entry{{Value: value, ArgumentID: argID}}
}

// Append adds an entry after the existing entries of valueID
func (s *Store) Append(valueID types.ValueID, argID types.ArgumentID, value string) {
	s.entries[valueID] = append(s.entries[valueID], Entry{Value: value, ArgumentID: argID})
}

// Clear removes all entries of valueID
func (s *Store) Clear(valueID types.ValueID) {
	delete(s.entries, valueID)
	delete(s.present, valueID)
}

// Touch marks valueID as present without recording a value
func (s *Store) Touch(valueID types.ValueID, argID types.ArgumentID) {
	s.present[valueID] = argID
}

// Has reports whether valueID has entries or was touched
func (s *Store) Has(valueID types.ValueID) bool {
	if len(s.entries[valueID]) > 0 {
		return true
	}
	_, found := s.present[valueID]

	return found
}

// Get returns the single entry of valueID. The boolean is false if there is none.
// Reading a value id with several entries is an error.
func (s *Store) Get(valueID types.ValueID) (Entry, bool, error) {
	entries := s.entries[valueID]
	switch len(entries) {
	case 0:
		return Entry{}, false, nil
	case 1:
		return entries[0], true, nil
	}

	return Entry{}, false, errs.ErrAmbiguousRead.WithArgs(valueID)
}

// GetAll returns a copy of the entries of valueID in the order they were recorded
func (s *Store) GetAll(valueID types.ValueID) []Entry {
	entries := s.entries[valueID]
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}
