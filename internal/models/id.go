package models

import "github.com/google/uuid"

// NewID returns a new record identifier (UUIDv7, time ordered).
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// ensureID assigns a new ID when id is the nil UUID. An omitted id and an
// explicit "00000000-0000-0000-0000-000000000000" both decode to uuid.Nil, so
// both are treated as absent.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = NewID()
	}
}
