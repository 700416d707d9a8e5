package links

import (
	"fmt"

	"caretrack-server/internal/apperr"
	"caretrack-server/internal/models"
)

// UserSummary is the display-safe projection of a user reference inside a
// link view. A dangling reference renders as the zero value.
type UserSummary struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// View is the flattened one-row-per-entry projection of the link aggregate
// used by the API. The embedded aggregate stays the storage shape.
type View struct {
	ID           string      `json:"id"`
	Patient      UserSummary `json:"patient"`
	LinkedUser   UserSummary `json:"linkedUser"`
	Relationship models.Role `json:"relationship"`
}

// Service implements the patient link operations: flattened listing,
// validated create with upsert-on-first-link, and entry deletion with
// empty-aggregate cleanup.
type Service struct {
	repo  Repository
	users UserDirectory
}

// NewService creates a new link Service.
func NewService(repo Repository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

// List returns one view row per link entry, optionally filtered by patient.
func (s *Service) List(patientID string) ([]View, error) {
	aggregates, err := s.repo.ListResolved(patientID)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0)
	for _, agg := range aggregates {
		patient := summarize(agg.PatientID, &agg.Patient)
		for _, entry := range agg.Entries {
			views = append(views, View{
				ID:           entry.ID,
				Patient:      patient,
				LinkedUser:   summarize(entry.LinkedUserID, &entry.LinkedUser),
				Relationship: entry.Relationship,
			})
		}
	}
	return views, nil
}

// Create links a caregiver to a patient. The aggregate for the patient is
// created implicitly on the first link. Validation order: linked user must
// exist, the user's role must match the requested relationship, and the
// (patient, caregiver) pair must not already be linked.
func (s *Service) Create(patientID, linkedUserID string, relationship models.Role) (*View, error) {
	if !relationship.IsCaregiver() {
		return nil, apperr.Validation(fmt.Sprintf("Relationship must be '%s' or '%s'", models.RoleFamily, models.RoleStaff))
	}

	linkedUser, err := s.users.FindByID(linkedUserID)
	if err != nil {
		return nil, err
	}
	if linkedUser == nil {
		return nil, apperr.Validation("Linked user not found")
	}
	if linkedUser.Role != relationship {
		return nil, apperr.Validation(fmt.Sprintf("User role '%s' does not match relationship type '%s'", linkedUser.Role, relationship))
	}

	aggregate, err := s.repo.FindByPatient(patientID)
	if err != nil {
		return nil, err
	}
	if aggregate != nil {
		for _, entry := range aggregate.Entries {
			if entry.LinkedUserID == linkedUserID {
				return nil, apperr.Conflict("This user is already linked to this patient")
			}
		}
	}

	entry := models.LinkEntry{
		LinkedUserID: linkedUserID,
		Relationship: relationship,
	}
	if aggregate == nil {
		aggregate = &models.PatientLink{
			PatientID: patientID,
			Entries:   []models.LinkEntry{entry},
		}
		if err := s.repo.CreateAggregate(aggregate); err != nil {
			return nil, err
		}
		entry = aggregate.Entries[len(aggregate.Entries)-1]
	} else {
		entry.PatientLinkID = aggregate.ID
		if err := s.repo.AddEntry(&entry); err != nil {
			return nil, err
		}
	}

	// Resolve the patient reference for the response view. A missing patient
	// user is not an error here; the summary stays empty.
	patient, err := s.users.FindByID(patientID)
	if err != nil {
		return nil, err
	}

	view := View{
		ID:           entry.ID,
		Patient:      summarize(patientID, patient),
		LinkedUser:   summarize(linkedUserID, linkedUser),
		Relationship: relationship,
	}
	return &view, nil
}

// Delete removes a link entry by id. When the parent aggregate has no
// entries left, the aggregate itself is deleted so no empty aggregates
// persist.
func (s *Service) Delete(entryID string) error {
	parent, err := s.repo.FindEntryParent(entryID)
	if err != nil {
		return err
	}
	if parent == nil {
		return apperr.NotFound("Link not found")
	}

	if err := s.repo.DeleteEntry(entryID); err != nil {
		return err
	}

	if len(parent.Entries) <= 1 {
		if err := s.repo.DeleteAggregate(parent.ID); err != nil {
			return err
		}
	}
	return nil
}

func summarize(id string, user *models.User) UserSummary {
	if user == nil || user.ID == "" {
		return UserSummary{ID: id}
	}
	return UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
