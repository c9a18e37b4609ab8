// Package store holds the Firestore-backed persistence for users, posts
// and profiles. Embedded-list mutations run inside transactions so two
// concurrent writers cannot overwrite each other's changes.
package store

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no document matches a lookup, including
// lookups with ids Firestore would reject outright.
var ErrNotFound = errors.New("document not found")

// validDocID reports whether id is acceptable as a Firestore document id.
// Invalid ids are treated as not-found by the stores rather than being
// allowed to surface as client errors.
func validDocID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsRune(id, '/')
}
