package models

// DoctorComment represents a free-text note by a staff member about a patient
type DoctorComment struct {
	BaseModel
	PatientID string `gorm:"size:36;index" json:"patientId"`
	StaffID   string `gorm:"size:36;index" json:"staffId"`
	Comment   string `gorm:"type:text;not null" json:"comment"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
	Staff   User `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}
