package digest

import (
	"gorm.io/gorm"

	"caretrack-server/internal/models"
)

// GormStore is the MySQL-backed Store implementation.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ResolvedPatientLinks() ([]models.PatientLink, error) {
	var aggregates []models.PatientLink
	err := s.DB.
		Preload("Patient").
		Preload("Entries").
		Preload("Entries.LinkedUser").
		Find(&aggregates).Error
	if err != nil {
		return nil, err
	}
	return aggregates, nil
}

func (s *GormStore) LatestVitals(patientID string) (*models.Vitals, error) {
	var vitals models.Vitals
	err := s.DB.Where("patient_id = ?", patientID).Order("recorded_at DESC").First(&vitals).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vitals, nil
}

func (s *GormStore) LatestComment(patientID string) (*models.DoctorComment, error) {
	var comment models.DoctorComment
	err := s.DB.Preload("Staff").Where("patient_id = ?", patientID).Order("created_at DESC").First(&comment).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
