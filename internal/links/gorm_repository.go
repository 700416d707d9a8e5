package links

import (
	"gorm.io/gorm"

	"caretrack-server/internal/models"
)

// GormRepository is the MySQL-backed Repository implementation.
type GormRepository struct {
	DB *gorm.DB
}

// NewGormRepository creates a new GormRepository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) ListResolved(patientID string) ([]models.PatientLink, error) {
	query := r.DB.
		Preload("Patient").
		Preload("Entries").
		Preload("Entries.LinkedUser").
		Order("created_at")
	if patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var aggregates []models.PatientLink
	if err := query.Find(&aggregates).Error; err != nil {
		return nil, err
	}
	return aggregates, nil
}

func (r *GormRepository) FindByPatient(patientID string) (*models.PatientLink, error) {
	var aggregate models.PatientLink
	err := r.DB.Preload("Entries").First(&aggregate, "patient_id = ?", patientID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &aggregate, nil
}

func (r *GormRepository) FindEntryParent(entryID string) (*models.PatientLink, error) {
	var entry models.LinkEntry
	err := r.DB.First(&entry, "id = ?", entryID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var aggregate models.PatientLink
	if err := r.DB.Preload("Entries").First(&aggregate, "id = ?", entry.PatientLinkID).Error; err != nil {
		return nil, err
	}
	return &aggregate, nil
}

func (r *GormRepository) CreateAggregate(link *models.PatientLink) error {
	return r.DB.Create(link).Error
}

func (r *GormRepository) AddEntry(entry *models.LinkEntry) error {
	return r.DB.Create(entry).Error
}

func (r *GormRepository) DeleteEntry(entryID string) error {
	return r.DB.Delete(&models.LinkEntry{}, "id = ?", entryID).Error
}

func (r *GormRepository) DeleteAggregate(id string) error {
	if err := r.DB.Delete(&models.LinkEntry{}, "patient_link_id = ?", id).Error; err != nil {
		return err
	}
	return r.DB.Delete(&models.PatientLink{}, "id = ?", id).Error
}

// GormUserDirectory is the MySQL-backed UserDirectory implementation.
type GormUserDirectory struct {
	DB *gorm.DB
}

// NewGormUserDirectory creates a new GormUserDirectory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{DB: db}
}

func (d *GormUserDirectory) FindByID(id string) (*models.User, error) {
	var user models.User
	err := d.DB.First(&user, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
