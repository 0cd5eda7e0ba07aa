package store

import (
	"errors"
	"fmt"
)

// Generic error kinds. Every entity specific sentinel wraps one of these so
// callers can check the kind with errors.Is without knowing the entity.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Sentinel errors for record store operations
var (
	ErrAddressNotFound           = fmt.Errorf("address %w", ErrNotFound)
	ErrAddressAlreadyExists      = fmt.Errorf("address with this ID %w", ErrAlreadyExists)
	ErrPersonNotFound            = fmt.Errorf("person %w", ErrNotFound)
	ErrPersonAlreadyExists       = fmt.Errorf("person with this ID %w", ErrAlreadyExists)
	ErrOrganizationNotFound      = fmt.Errorf("organization %w", ErrNotFound)
	ErrOrganizationAlreadyExists = fmt.Errorf("organization with this ID %w", ErrAlreadyExists)
	ErrProjectNotFound           = fmt.Errorf("project %w", ErrNotFound)
	ErrProjectAlreadyExists      = fmt.Errorf("project with this ID %w", ErrAlreadyExists)
)

// Stores groups the record stores handed to the HTTP handlers.
type Stores struct {
	Addresses     AddressStore
	Persons       PersonStore
	Organizations OrganizationStore
	Projects      ProjectStore
}
