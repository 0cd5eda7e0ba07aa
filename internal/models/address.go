package models

import (
	"time"

	"github.com/google/uuid"
)

// AddressBase holds the fields shared by every view of an address. Persons
// embed addresses by value using this type.
type AddressBase struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      *string   `json:"state"`
	PostalCode *string   `json:"postal_code"`
	Country    string    `json:"country"`
}

// AddressCreate is the creation payload for an address.
type AddressCreate = AddressBase

// EnsureID assigns a new identifier when none was supplied.
func (a *AddressBase) EnsureID() {
	ensureID(&a.ID)
}

// Clone returns a deep copy of the address.
func (a AddressBase) Clone() AddressBase {
	a.State = clonePtr(a.State)
	a.PostalCode = clonePtr(a.PostalCode)
	return a
}

// Address is the stored and returned representation of an address.
type Address struct {
	AddressBase
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the address.
func (a *Address) Clone() *Address {
	return &Address{
		AddressBase: a.AddressBase.Clone(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AddressUpdate is a partial update; only fields present in the request are applied.
type AddressUpdate struct {
	Street     Optional[string] `json:"street,omitzero"`
	City       Optional[string] `json:"city,omitzero"`
	State      Optional[string] `json:"state,omitzero"`
	PostalCode Optional[string] `json:"postal_code,omitzero"`
	Country    Optional[string] `json:"country,omitzero"`
}

// Apply merges the present fields of u onto a.
func (u AddressUpdate) Apply(a *AddressBase) {
	applyValue(u.Street, &a.Street)
	applyValue(u.City, &a.City)
	applyNullable(u.State, &a.State)
	applyNullable(u.PostalCode, &a.PostalCode)
	applyValue(u.Country, &a.Country)
}
