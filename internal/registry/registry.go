// internal/registry/registry.go
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"mergington-activities/internal/common/errors"
)

// Activity is one extracurricular offering. The registry key is its name.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SeedActivity pairs an activity with its registry name, preserving seed order.
type SeedActivity struct {
	Name string `json:"name"`
	Activity
}

// Registry is the in-memory store of all activities. It is constructed once
// from seed data and mutated only through Signup and Unregister. The mutex
// keeps concurrent handlers from losing updates; each operation is a single
// check-then-mutate step under the lock.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	order      []string
	seed       []SeedActivity
}

// New builds a registry from seed data. Participant slices are copied so the
// seed stays reusable for Reset.
func New(seed []SeedActivity) *Registry {
	r := &Registry{seed: seed}
	r.load()
	return r
}

// NewDefault builds a registry from the built-in seed data set.
func NewDefault() *Registry {
	return New(DefaultSeed())
}

func (r *Registry) load() {
	r.activities = make(map[string]*Activity, len(r.seed))
	r.order = make([]string, 0, len(r.seed))
	for _, s := range r.seed {
		a := s.Activity
		a.Participants = append([]string(nil), s.Participants...)
		r.activities[s.Name] = &a
		r.order = append(r.order, s.Name)
	}
}

// Reset restores the registry to its seed state.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()
}

// Snapshot is an ordered, detached view of the registry. It marshals as a
// JSON object whose keys appear in registry insertion order.
type Snapshot struct {
	Names      []string
	Activities map[string]Activity
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.Activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// List returns a snapshot of every activity. Participant slices are copied;
// callers can never mutate registry state through the result.
func (r *Registry) List() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		Names:      append([]string(nil), r.order...),
		Activities: make(map[string]Activity, len(r.activities)),
	}
	for name, a := range r.activities {
		copied := *a
		copied.Participants = append([]string(nil), a.Participants...)
		snap.Activities[name] = copied
	}
	return snap
}

// Get returns a detached copy of one activity.
func (r *Registry) Get(name string) (Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, false
	}
	copied := *a
	copied.Participants = append([]string(nil), a.Participants...)
	return copied, true
}

// Signup appends email to the activity's participant list and returns the
// confirmation message. Duplicate signups and signups past capacity are
// rejected; a failed signup leaves the registry untouched.
func (r *Registry) Signup(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return "", errors.NewActivityNotFoundError(activityName)
	}
	for _, p := range a.Participants {
		if p == email {
			return "", errors.NewAlreadySignedUpError(activityName, email)
		}
	}
	if a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants {
		return "", errors.NewActivityFullError(activityName, a.MaxParticipants)
	}

	a.Participants = append(a.Participants, email)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes exactly one occurrence of email from the activity's
// participant list, keeping the order of the remaining entries. A second
// unregister of the same email fails with the participant-not-found error.
func (r *Registry) Unregister(activityName, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[activityName]
	if !ok {
		return "", errors.NewActivityNotFoundError(activityName)
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return fmt.Sprintf("Removed %s from %s", email, activityName), nil
		}
	}
	return "", errors.NewParticipantNotFoundError(activityName, email)
}

// ParticipantCount returns the current enrollment of one activity.
func (r *Registry) ParticipantCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if a, ok := r.activities[name]; ok {
		return len(a.Participants)
	}
	return 0
}
