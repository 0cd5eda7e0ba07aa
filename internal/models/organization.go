package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationBase holds the fields shared by every view of an organization.
type OrganizationBase struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

// OrganizationCreate is the creation payload for an organization.
type OrganizationCreate = OrganizationBase

// EnsureID assigns a new identifier when none was supplied.
func (o *OrganizationBase) EnsureID() {
	ensureID(&o.ID)
}

// Organization is the stored and returned representation of an organization.
type Organization struct {
	OrganizationBase
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the organization.
func (o *Organization) Clone() *Organization {
	clone := *o
	clone.Description = clonePtr(o.Description)
	return &clone
}

// OrganizationUpdate is a partial update of an organization.
type OrganizationUpdate struct {
	Name        Optional[string] `json:"name,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
}

// Apply merges the present fields of u onto o.
func (u OrganizationUpdate) Apply(o *OrganizationBase) {
	applyValue(u.Name, &o.Name)
	applyNullable(u.Description, &o.Description)
}
