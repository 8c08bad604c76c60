package contacts

import (
	"fmt"
	"strings"
	"sync"
)

// Registry owns the contact list and the current name filter.
// It is safe for concurrent use; every method holds the registry lock for
// its whole duration, so Add's uniqueness check and append are atomic.
type Registry struct {
	mu       sync.Mutex
	ids      IDGenerator
	contacts []Contact
	filter   string
}

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Registry) {
		if g != nil {
			r.ids = g
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{ids: UUIDGenerator{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends a new contact. It fails with ErrDuplicateName, leaving the
// registry untouched, when a contact with exactly the same name exists.
func (r *Registry) Add(name, number string) (Contact, error) {
	if name == "" || number == "" {
		return Contact{}, ErrMissingField
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.Name == name {
			return Contact{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	c := Contact{ID: r.ids.NextID(), Name: name, Number: number}
	r.contacts = append(r.contacts, c)
	return c, nil
}

// Delete removes the contact with the given id. It reports whether a
// contact was removed; an unknown id is a no-op.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.contacts {
		if c.ID != id {
			continue
		}
		r.contacts = append(r.contacts[:i:i], r.contacts[i+1:]...)
		return true
	}
	return false
}

// SetFilter replaces the name filter.
func (r *Registry) SetFilter(text string) {
	r.mu.Lock()
	r.filter = text
	r.mu.Unlock()
}

func (r *Registry) Filter() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter
}

// Visible returns the contacts whose name contains the filter, ignoring
// case, in insertion order. An empty filter matches every contact.
func (r *Registry) Visible() []Contact {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(r.filter)
	out := make([]Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Contacts returns a copy of every contact in insertion order.
func (r *Registry) Contacts() []Contact {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Contact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contacts)
}

// Get looks a contact up by id.
func (r *Registry) Get(id string) (Contact, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}
