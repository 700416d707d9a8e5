// Package seed populates a fresh database with demo users, links, clinical
// records and inventory.
package seed

import (
	"time"

	"gorm.io/gorm"

	"caretrack-server/internal/models"
)

// Run wipes the existing data and inserts the demo dataset.
func Run(db *gorm.DB) error {
	tables := []interface{}{
		&models.LinkEntry{},
		&models.PatientLink{},
		&models.Vitals{},
		&models.DoctorComment{},
		&models.Medicine{},
		&models.Inquiry{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}

	admin := models.User{Name: "Admin", Email: "admin@healthcare.com", Role: models.RoleAdmin}
	if err := admin.SetPassword("admin123"); err != nil {
		return err
	}
	john := models.User{Name: "John Doe", Email: "john@example.com", Role: models.RolePatient}
	if err := john.SetPassword("patient123"); err != nil {
		return err
	}
	jane := models.User{Name: "Jane Smith", Email: "jane@example.com", Role: models.RolePatient}
	if err := jane.SetPassword("patient123"); err != nil {
		return err
	}
	mary := models.User{Name: "Mary Doe", Email: "mary@example.com", Role: models.RoleFamily}
	if err := mary.SetPassword("family123"); err != nil {
		return err
	}
	wilson := models.User{Name: "Dr. Wilson", Email: "wilson@example.com", Role: models.RoleStaff}
	if err := wilson.SetPassword("staff123"); err != nil {
		return err
	}

	for _, user := range []*models.User{&admin, &john, &jane, &mary, &wilson} {
		if err := db.Create(user).Error; err != nil {
			return err
		}
	}

	link := models.PatientLink{
		PatientID: john.ID,
		Entries: []models.LinkEntry{
			{LinkedUserID: mary.ID, Relationship: models.RoleFamily},
			{LinkedUserID: wilson.ID, Relationship: models.RoleStaff},
		},
	}
	if err := db.Create(&link).Error; err != nil {
		return err
	}

	vitals := []models.Vitals{
		{
			PatientID: john.ID, HeartRate: 72, Systolic: 120, Diastolic: 80,
			Temperature: 98.6, OxygenLevel: 98, Weight: 180,
			RecordedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			PatientID: john.ID, HeartRate: 75, Systolic: 122, Diastolic: 82,
			Temperature: 98.4, OxygenLevel: 97, Weight: 179,
			RecordedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			PatientID: jane.ID, HeartRate: 68, Systolic: 118, Diastolic: 76,
			Temperature: 98.2, OxygenLevel: 99, Weight: 140,
			RecordedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range vitals {
		if err := db.Create(&vitals[i]).Error; err != nil {
			return err
		}
	}

	comment := models.DoctorComment{
		PatientID: john.ID,
		StaffID:   wilson.ID,
		Comment:   "Patient is recovering well. Continue current medication.",
	}
	if err := db.Create(&comment).Error; err != nil {
		return err
	}

	medicines := []models.Medicine{
		{Name: "Aspirin", Quantity: 500, ExpiryDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{Name: "Amoxicillin", Quantity: 200, ExpiryDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Ibuprofen", Quantity: 0, ExpiryDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Metformin", Quantity: 300, ExpiryDate: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)},
	}
	for i := range medicines {
		if err := db.Create(&medicines[i]).Error; err != nil {
			return err
		}
	}

	inquiry := models.Inquiry{
		UserID:  mary.ID,
		Message: "When is John's next appointment scheduled?",
	}
	return db.Create(&inquiry).Error
}
