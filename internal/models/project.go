package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectBase holds the fields shared by every view of a project.
type ProjectBase struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Summary *string   `json:"summary"`
	// OrganizationID refers to an organization but is never checked against
	// the organization store.
	OrganizationID *uuid.UUID `json:"organization_id"`
}

// ProjectCreate is the creation payload for a project.
type ProjectCreate = ProjectBase

// EnsureID assigns a new identifier when none was supplied.
func (p *ProjectBase) EnsureID() {
	ensureID(&p.ID)
}

// Project is the stored and returned representation of a project.
type Project struct {
	ProjectBase
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the project.
func (p *Project) Clone() *Project {
	clone := *p
	clone.Summary = clonePtr(p.Summary)
	clone.OrganizationID = clonePtr(p.OrganizationID)
	return &clone
}

// ProjectUpdate is a partial update of a project.
type ProjectUpdate struct {
	Title          Optional[string]    `json:"title,omitzero"`
	Summary        Optional[string]    `json:"summary,omitzero"`
	OrganizationID Optional[uuid.UUID] `json:"organization_id,omitzero"`
}

// Apply merges the present fields of u onto p.
func (u ProjectUpdate) Apply(p *ProjectBase) {
	applyValue(u.Title, &p.Title)
	applyNullable(u.Summary, &p.Summary)
	applyNullable(u.OrganizationID, &p.OrganizationID)
}
