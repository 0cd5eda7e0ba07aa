package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonBase holds the fields shared by every view of a person.
type PersonBase struct {
	ID        uuid.UUID     `json:"id"`
	UNI       string        `json:"uni"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone"`
	BirthDate *Date         `json:"birth_date"`
	Addresses []AddressBase `json:"addresses"`
}

// PersonCreate is the creation payload for a person.
type PersonCreate = PersonBase

// EnsureID assigns identifiers to the person and to any embedded address
// that arrived without one. A nil address list becomes an empty one.
func (p *PersonBase) EnsureID() {
	ensureID(&p.ID)
	p.Addresses = ensureAddressIDs(p.Addresses)
}

// Clone returns a deep copy of the person.
func (p PersonBase) Clone() PersonBase {
	p.Phone = clonePtr(p.Phone)
	p.BirthDate = clonePtr(p.BirthDate)
	p.Addresses = cloneAddresses(p.Addresses)
	return p
}

// Person is the stored and returned representation of a person.
type Person struct {
	PersonBase
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the person.
func (p *Person) Clone() *Person {
	return &Person{
		PersonBase: p.PersonBase.Clone(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// PersonUpdate is a partial update. A present addresses list replaces the
// stored list as a whole.
type PersonUpdate struct {
	UNI       Optional[string]        `json:"uni,omitzero"`
	FirstName Optional[string]        `json:"first_name,omitzero"`
	LastName  Optional[string]        `json:"last_name,omitzero"`
	Email     Optional[string]        `json:"email,omitzero"`
	Phone     Optional[string]        `json:"phone,omitzero"`
	BirthDate Optional[Date]          `json:"birth_date,omitzero"`
	Addresses Optional[[]AddressBase] `json:"addresses,omitzero"`
}

// Apply merges the present fields of u onto p.
func (u PersonUpdate) Apply(p *PersonBase) {
	applyValue(u.UNI, &p.UNI)
	applyValue(u.FirstName, &p.FirstName)
	applyValue(u.LastName, &p.LastName)
	applyValue(u.Email, &p.Email)
	applyNullable(u.Phone, &p.Phone)
	applyNullable(u.BirthDate, &p.BirthDate)
	if u.Addresses.Set && !u.Addresses.Null {
		p.Addresses = ensureAddressIDs(cloneAddresses(u.Addresses.Value))
	}
}

func cloneAddresses(in []AddressBase) []AddressBase {
	if in == nil {
		return nil
	}
	out := make([]AddressBase, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

func ensureAddressIDs(addrs []AddressBase) []AddressBase {
	if addrs == nil {
		return []AddressBase{}
	}
	for i := range addrs {
		addrs[i].EnsureID()
	}
	return addrs
}
