package links

import (
	"caretrack-server/internal/models"
)

// Repository is the persistence contract for patient link aggregates.
// Lookup methods return (nil, nil) when no row matches.
type Repository interface {
	// ListResolved returns aggregates with patient and linked users resolved,
	// optionally filtered by patient id. Ordering follows insertion order so
	// listings are reproducible.
	ListResolved(patientID string) ([]models.PatientLink, error)
	// FindByPatient returns the aggregate for a patient, entries included.
	FindByPatient(patientID string) (*models.PatientLink, error)
	// FindEntryParent returns the aggregate owning the given entry, entries
	// included.
	FindEntryParent(entryID string) (*models.PatientLink, error)
	// CreateAggregate persists a new aggregate together with its entries.
	CreateAggregate(link *models.PatientLink) error
	// AddEntry appends an entry to an existing aggregate.
	AddEntry(entry *models.LinkEntry) error
	// DeleteEntry removes a single entry by id.
	DeleteEntry(entryID string) error
	// DeleteAggregate removes an aggregate and its remaining entries.
	DeleteAggregate(id string) error
}

// UserDirectory resolves user references. Returns (nil, nil) when the user
// does not exist.
type UserDirectory interface {
	FindByID(id string) (*models.User, error)
}
