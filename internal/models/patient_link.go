package models

// PatientLink is the per-patient caregiver aggregate. At most one row exists
// per patient; caregivers live in the owned LinkEntry collection and the
// aggregate is created implicitly with the first link.
type PatientLink struct {
	BaseModel
	PatientID string      `gorm:"size:36;uniqueIndex;not null" json:"patientId"`
	Entries   []LinkEntry `gorm:"foreignKey:PatientLinkID" json:"links"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}

// LinkEntry is a single caregiver pairing owned by its parent PatientLink.
// The composite unique index backs the application-level duplicate check so a
// race between two concurrent creates cannot slip a second pairing through.
type LinkEntry struct {
	BaseModel
	PatientLinkID string `gorm:"size:36;uniqueIndex:idx_link_caregiver;not null" json:"-"`
	LinkedUserID  string `gorm:"size:36;uniqueIndex:idx_link_caregiver;not null" json:"linkedUserId"`
	Relationship  Role   `gorm:"size:20;not null" json:"relationship"`

	// Relations
	LinkedUser User `gorm:"foreignKey:LinkedUserID" json:"-"`
}

// FamilyEntries returns the entries whose relationship is family.
func (pl *PatientLink) FamilyEntries() []LinkEntry {
	var family []LinkEntry
	for _, e := range pl.Entries {
		if e.Relationship == RoleFamily {
			family = append(family, e)
		}
	}
	return family
}
