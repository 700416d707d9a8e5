package models

import (
	"time"
)

// Vitals represents a point-in-time clinical reading for a patient
type Vitals struct {
	BaseModel
	PatientID   string    `gorm:"size:36;index" json:"patientId"`
	HeartRate   int       `gorm:"not null" json:"heartRate"`
	Systolic    int       `gorm:"not null" json:"systolic"`
	Diastolic   int       `gorm:"not null" json:"diastolic"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	OxygenLevel float64   `gorm:"not null" json:"oxygenLevel"`
	Weight      float64   `gorm:"not null" json:"weight"`
	RecordedAt  time.Time `gorm:"index" json:"recordedAt"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}
