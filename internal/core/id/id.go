// Package id generates and parses entity identifiers.
//
// Identifiers are UUIDv7: the leading timestamp bits keep inserts
// append-ordered in Postgres B-trees and make sorting by id chronological.
package id

import "github.com/google/uuid"

// ID identifies any persisted entity.
type ID = uuid.UUID

// New returns a fresh time-ordered identifier. uuid.NewV7 only fails when
// the entropy source does; a random V4 still yields a unique id then.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}

// Parse validates and converts the string form.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// Nil is the zero identifier.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether v is the zero identifier.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
