package authz

import (
	"gorm.io/gorm"

	"caretrack-server/internal/models"
)

// GormLinkReader is the MySQL-backed LinkReader implementation.
type GormLinkReader struct {
	DB *gorm.DB
}

// NewGormLinkReader creates a new GormLinkReader.
func NewGormLinkReader(db *gorm.DB) *GormLinkReader {
	return &GormLinkReader{DB: db}
}

func (r *GormLinkReader) PatientIDsLinkedTo(userID string) ([]string, error) {
	var patientIDs []string
	err := r.DB.Model(&models.LinkEntry{}).
		Joins("JOIN patient_links ON patient_links.id = link_entries.patient_link_id").
		Where("link_entries.linked_user_id = ?", userID).
		Distinct("patient_links.patient_id").
		Pluck("patient_links.patient_id", &patientIDs).Error
	if err != nil {
		return nil, err
	}
	return patientIDs, nil
}
