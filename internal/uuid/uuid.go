// Package uuid wraps google/uuid so that IDs can be bound from URIs and query strings by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// IsNil reports if no ID was given.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}

// Ptr returns a pointer to the wrapped ID, or nil if no ID was given.
// Used for optional references.
func (u UUID) Ptr() *google_uuid.UUID {
	if u.IsNil() {
		return nil
	}

	id := u.UUID
	return &id
}

// UnmarshalParam implements gin's BindUnmarshaler for URI and form binding.
// The empty string binds to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
