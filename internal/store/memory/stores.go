// Package memory implements the record stores in process memory. Data is
// lost when the process exits.
package memory

import (
	"time"

	"github.com/wolfeidau/records/internal/store"
)

// NewStores creates an empty in-memory store for every record type.
func NewStores() store.Stores {
	return store.Stores{
		Addresses:     NewAddressStore(),
		Persons:       NewPersonStore(),
		Organizations: NewOrganizationStore(),
		Projects:      NewProjectStore(),
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
