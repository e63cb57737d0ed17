// Package catalog keeps the dev host's activities in memory, in insertion order.
package catalog

import (
	"errors"
	"sync"

	"github.com/vcrobe/activities/internal/activities"
)

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrAlreadySignedUp     = errors.New("student already signed up")
	ErrActivityFull        = errors.New("activity is full")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Store is a concurrency-safe, ordered set of activities.
type Store struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*activities.Activity
}

// NewStore copies seed into a new Store. A repeated name keeps its first position.
func NewStore(seed []activities.Activity) *Store {
	s := &Store{byName: make(map[string]*activities.Activity, len(seed))}
	for _, a := range seed {
		if _, exists := s.byName[a.Name]; !exists {
			s.order = append(s.order, a.Name)
		}
		cp := clone(a)
		s.byName[a.Name] = &cp
	}
	return s
}

// List returns a snapshot of every activity in insertion order.
func (s *Store) List() []activities.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]activities.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, clone(*s.byName[name]))
	}
	return out
}

// Get returns a snapshot of one activity.
func (s *Store) Get(name string) (activities.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byName[name]
	if !ok {
		return activities.Activity{}, ErrActivityNotFound
	}
	return clone(*a), nil
}

// Signup adds email to the activity roster.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byName[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if len(a.Participants) >= a.MaxParticipants {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity roster.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byName[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}

func clone(a activities.Activity) activities.Activity {
	a.Participants = append([]string{}, a.Participants...)
	return a
}
