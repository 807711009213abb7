// Package repositories maps the persisted collections onto typed accessors.
// Every mutation decodes the whole collection, applies the change and writes
// the whole collection back in one store commit.
package repositories

import "errors"

// ErrNotFound is returned when a record id is absent from its collection.
// Deletes never return it; a missing id on delete is a silent no-op.
var ErrNotFound = errors.New("record not found")
