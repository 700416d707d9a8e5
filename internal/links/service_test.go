package links

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack-server/internal/apperr"
	"caretrack-server/internal/models"
)

// Compile-time checks that the mocks satisfy the contracts.
var (
	_ Repository    = (*mockRepository)(nil)
	_ UserDirectory = (*mockUserDirectory)(nil)
)

type mockRepository struct {
	ListResolvedFunc    func(patientID string) ([]models.PatientLink, error)
	FindByPatientFunc   func(patientID string) (*models.PatientLink, error)
	FindEntryParentFunc func(entryID string) (*models.PatientLink, error)
	CreateAggregateFunc func(link *models.PatientLink) error
	AddEntryFunc        func(entry *models.LinkEntry) error
	DeleteEntryFunc     func(entryID string) error
	DeleteAggregateFunc func(id string) error

	createCalls          int
	addEntryCalls        int
	deleteEntryCalls     int
	deleteAggregateCalls int
}

func (m *mockRepository) ListResolved(patientID string) ([]models.PatientLink, error) {
	if m.ListResolvedFunc != nil {
		return m.ListResolvedFunc(patientID)
	}
	return nil, nil
}

func (m *mockRepository) FindByPatient(patientID string) (*models.PatientLink, error) {
	if m.FindByPatientFunc != nil {
		return m.FindByPatientFunc(patientID)
	}
	return nil, nil
}

func (m *mockRepository) FindEntryParent(entryID string) (*models.PatientLink, error) {
	if m.FindEntryParentFunc != nil {
		return m.FindEntryParentFunc(entryID)
	}
	return nil, nil
}

func (m *mockRepository) CreateAggregate(link *models.PatientLink) error {
	m.createCalls++
	if m.CreateAggregateFunc != nil {
		return m.CreateAggregateFunc(link)
	}
	return nil
}

func (m *mockRepository) AddEntry(entry *models.LinkEntry) error {
	m.addEntryCalls++
	if m.AddEntryFunc != nil {
		return m.AddEntryFunc(entry)
	}
	return nil
}

func (m *mockRepository) DeleteEntry(entryID string) error {
	m.deleteEntryCalls++
	if m.DeleteEntryFunc != nil {
		return m.DeleteEntryFunc(entryID)
	}
	return nil
}

func (m *mockRepository) DeleteAggregate(id string) error {
	m.deleteAggregateCalls++
	if m.DeleteAggregateFunc != nil {
		return m.DeleteAggregateFunc(id)
	}
	return nil
}

type mockUserDirectory struct {
	users map[string]*models.User
}

func (m *mockUserDirectory) FindByID(id string) (*models.User, error) {
	return m.users[id], nil
}

func user(id, name, email string, role models.Role) *models.User {
	u := &models.User{Name: name, Email: email, Role: role}
	u.ID = id
	return u
}

func TestCreateLink_LinkedUserNotFound(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockUserDirectory{users: map[string]*models.User{}})

	view, err := svc.Create("p1", "missing", models.RoleFamily)

	assert.Nil(t, view)
	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "Linked user not found")
	assert.Zero(t, repo.createCalls, "store must not be mutated")
	assert.Zero(t, repo.addEntryCalls, "store must not be mutated")
}

func TestCreateLink_RoleRelationshipMismatch(t *testing.T) {
	repo := &mockRepository{}
	users := &mockUserDirectory{users: map[string]*models.User{
		"u1": user("u1", "Dr. Wilson", "wilson@example.com", models.RoleStaff),
	}}
	svc := NewService(repo, users)

	view, err := svc.Create("p1", "u1", models.RoleFamily)

	assert.Nil(t, view)
	assert.True(t, apperr.IsValidation(err))
	// The message names both the actual role and the requested relationship.
	assert.Contains(t, err.Error(), "staff")
	assert.Contains(t, err.Error(), "family")
	assert.Zero(t, repo.createCalls, "store must not be mutated")
	assert.Zero(t, repo.addEntryCalls, "store must not be mutated")
}

func TestCreateLink_InvalidRelationship(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockUserDirectory{users: map[string]*models.User{}})

	_, err := svc.Create("p1", "u1", models.RolePatient)

	assert.True(t, apperr.IsValidation(err))
	assert.Zero(t, repo.createCalls)
}

func TestCreateLink_Duplicate(t *testing.T) {
	existing := &models.PatientLink{
		PatientID: "p1",
		Entries: []models.LinkEntry{
			{LinkedUserID: "u1", Relationship: models.RoleFamily},
		},
	}
	existing.ID = "agg1"

	repo := &mockRepository{
		FindByPatientFunc: func(patientID string) (*models.PatientLink, error) {
			return existing, nil
		},
	}
	users := &mockUserDirectory{users: map[string]*models.User{
		"u1": user("u1", "Mary Doe", "mary@example.com", models.RoleFamily),
	}}
	svc := NewService(repo, users)

	view, err := svc.Create("p1", "u1", models.RoleFamily)

	assert.Nil(t, view)
	assert.True(t, apperr.IsConflict(err))
	assert.Zero(t, repo.createCalls, "store must not be mutated")
	assert.Zero(t, repo.addEntryCalls, "store must not be mutated")
}

func TestCreateLink_FirstLinkCreatesAggregate(t *testing.T) {
	var created *models.PatientLink
	repo := &mockRepository{
		CreateAggregateFunc: func(link *models.PatientLink) error {
			link.ID = "agg1"
			link.Entries[0].ID = "entry1"
			created = link
			return nil
		},
	}
	users := &mockUserDirectory{users: map[string]*models.User{
		"p1": user("p1", "John Doe", "john@example.com", models.RolePatient),
		"u1": user("u1", "Mary Doe", "mary@example.com", models.RoleFamily),
	}}
	svc := NewService(repo, users)

	view, err := svc.Create("p1", "u1", models.RoleFamily)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "p1", created.PatientID)
	require.Len(t, created.Entries, 1)
	assert.Equal(t, "u1", created.Entries[0].LinkedUserID)
	assert.Equal(t, models.RoleFamily, created.Entries[0].Relationship)

	assert.Equal(t, "entry1", view.ID)
	assert.Equal(t, "John Doe", view.Patient.Name)
	assert.Equal(t, "Mary Doe", view.LinkedUser.Name)
	assert.Equal(t, models.RoleFamily, view.Relationship)
	assert.Zero(t, repo.addEntryCalls)
}

func TestCreateLink_SecondLinkAppendsEntry(t *testing.T) {
	existing := &models.PatientLink{
		PatientID: "p1",
		Entries: []models.LinkEntry{
			{LinkedUserID: "u1", Relationship: models.RoleFamily},
		},
	}
	existing.ID = "agg1"

	var appended *models.LinkEntry
	repo := &mockRepository{
		FindByPatientFunc: func(patientID string) (*models.PatientLink, error) {
			return existing, nil
		},
		AddEntryFunc: func(entry *models.LinkEntry) error {
			entry.ID = "entry2"
			appended = entry
			return nil
		},
	}
	users := &mockUserDirectory{users: map[string]*models.User{
		"p1": user("p1", "John Doe", "john@example.com", models.RolePatient),
		"u2": user("u2", "Dr. Wilson", "wilson@example.com", models.RoleStaff),
	}}
	svc := NewService(repo, users)

	view, err := svc.Create("p1", "u2", models.RoleStaff)

	require.NoError(t, err)
	require.NotNil(t, appended)
	assert.Equal(t, "agg1", appended.PatientLinkID)
	assert.Equal(t, "u2", appended.LinkedUserID)
	assert.Equal(t, "entry2", view.ID)
	assert.Zero(t, repo.createCalls)
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	// In-memory state shared between the create and list paths.
	var stored *models.PatientLink
	patient := user("p1", "John Doe", "john@example.com", models.RolePatient)
	caregiver := user("u1", "Mary Doe", "mary@example.com", models.RoleFamily)

	repo := &mockRepository{
		FindByPatientFunc: func(patientID string) (*models.PatientLink, error) {
			return stored, nil
		},
		CreateAggregateFunc: func(link *models.PatientLink) error {
			link.ID = "agg1"
			link.Entries[0].ID = "entry1"
			stored = link
			return nil
		},
		ListResolvedFunc: func(patientID string) ([]models.PatientLink, error) {
			if stored == nil || (patientID != "" && stored.PatientID != patientID) {
				return nil, nil
			}
			resolved := *stored
			resolved.Patient = *patient
			resolved.Entries = []models.LinkEntry{stored.Entries[0]}
			resolved.Entries[0].LinkedUser = *caregiver
			return []models.PatientLink{resolved}, nil
		},
	}
	users := &mockUserDirectory{users: map[string]*models.User{"p1": patient, "u1": caregiver}}
	svc := NewService(repo, users)

	_, err := svc.Create("p1", "u1", models.RoleFamily)
	require.NoError(t, err)

	views, err := svc.List("p1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "entry1", views[0].ID)
	assert.Equal(t, "u1", views[0].LinkedUser.ID)
	assert.Equal(t, models.RoleFamily, views[0].Relationship)

	views, err = svc.List("other")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDeleteLink_NotFound(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo, &mockUserDirectory{})

	err := svc.Delete("missing")

	assert.True(t, apperr.IsNotFound(err))
	assert.Zero(t, repo.deleteEntryCalls)
}

func TestDeleteLink_LastEntryRemovesAggregate(t *testing.T) {
	parent := &models.PatientLink{
		PatientID: "p1",
		Entries:   []models.LinkEntry{{LinkedUserID: "u1", Relationship: models.RoleFamily}},
	}
	parent.ID = "agg1"
	parent.Entries[0].ID = "entry1"

	repo := &mockRepository{
		FindEntryParentFunc: func(entryID string) (*models.PatientLink, error) {
			return parent, nil
		},
	}
	svc := NewService(repo, &mockUserDirectory{})

	err := svc.Delete("entry1")

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.deleteEntryCalls)
	assert.Equal(t, 1, repo.deleteAggregateCalls, "empty aggregate must be removed")
}

func TestDeleteLink_RemainingEntriesKeepAggregate(t *testing.T) {
	parent := &models.PatientLink{
		PatientID: "p1",
		Entries: []models.LinkEntry{
			{LinkedUserID: "u1", Relationship: models.RoleFamily},
			{LinkedUserID: "u2", Relationship: models.RoleStaff},
		},
	}
	parent.ID = "agg1"
	parent.Entries[0].ID = "entry1"
	parent.Entries[1].ID = "entry2"

	repo := &mockRepository{
		FindEntryParentFunc: func(entryID string) (*models.PatientLink, error) {
			return parent, nil
		},
	}
	svc := NewService(repo, &mockUserDirectory{})

	err := svc.Delete("entry1")

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.deleteEntryCalls)
	assert.Zero(t, repo.deleteAggregateCalls, "aggregate with remaining entries must survive")
}

func TestCreateLink_RepositoryError(t *testing.T) {
	repo := &mockRepository{
		FindByPatientFunc: func(patientID string) (*models.PatientLink, error) {
			return nil, errors.New("connection lost")
		},
	}
	users := &mockUserDirectory{users: map[string]*models.User{
		"u1": user("u1", "Mary Doe", "mary@example.com", models.RoleFamily),
	}}
	svc := NewService(repo, users)

	_, err := svc.Create("p1", "u1", models.RoleFamily)

	assert.Error(t, err)
	assert.False(t, apperr.IsValidation(err))
	assert.False(t, apperr.IsConflict(err))
}
