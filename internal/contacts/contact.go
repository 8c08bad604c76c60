// Package contacts holds the in-memory contact registry: the contact list,
// the name filter, id generation, and lookups over them.
package contacts

import "errors"

// Contact is a single phone book entry.
type Contact struct {
	ID     string
	Name   string
	Number string
}

var (
	// ErrDuplicateName is returned by Add when a contact with the exact same
	// name already exists. Matching is case-sensitive.
	ErrDuplicateName = errors.New("contact already exists")

	// ErrMissingField is returned by Add when the name or number is empty.
	ErrMissingField = errors.New("name and number are required")
)
