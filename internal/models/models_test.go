package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsCaregiver(t *testing.T) {
	assert.True(t, RoleFamily.IsCaregiver())
	assert.True(t, RoleStaff.IsCaregiver())
	assert.False(t, RoleAdmin.IsCaregiver())
	assert.False(t, RolePatient.IsCaregiver())
}

func TestFamilyEntries(t *testing.T) {
	link := PatientLink{
		Entries: []LinkEntry{
			{LinkedUserID: "u1", Relationship: RoleFamily},
			{LinkedUserID: "u2", Relationship: RoleStaff},
			{LinkedUserID: "u3", Relationship: RoleFamily},
		},
	}

	family := link.FamilyEntries()
	assert.Len(t, family, 2)
	for _, e := range family {
		assert.Equal(t, RoleFamily, e.Relationship)
	}

	empty := PatientLink{}
	assert.Empty(t, empty.FamilyEntries())
}

func TestPasswordHashing(t *testing.T) {
	var user User
	assert.NoError(t, user.SetPassword("secret123"))
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestSanitizeOmitsPassword(t *testing.T) {
	user := User{Name: "Mary Doe", Email: "mary@example.com", Role: RoleFamily}
	user.ID = "u1"
	user.Password = "hashed"

	sanitized := user.Sanitize()
	assert.Equal(t, "u1", sanitized.ID)
	assert.Equal(t, "Mary Doe", sanitized.Name)
	assert.Equal(t, RoleFamily, sanitized.Role)
}
