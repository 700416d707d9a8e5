package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caretrack-server/internal/models"
	"caretrack-server/internal/utils"
)

// VitalsHandler handles vital sign record requests.
type VitalsHandler struct {
	DB *gorm.DB
}

// NewVitalsHandler creates a new VitalsHandler.
func NewVitalsHandler(db *gorm.DB) *VitalsHandler {
	return &VitalsHandler{DB: db}
}

// GetVitals handles listing vitals, newest first, optionally filtered by
// patient id.
func (h *VitalsHandler) GetVitals(c *gin.Context) {
	query := h.DB.Order("recorded_at DESC")
	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var vitals []models.Vitals
	if err := query.Find(&vitals).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch vitals: "+err.Error())
		return
	}

	utils.Success(c, "Vitals fetched successfully", vitals)
}

// CreateVitalsRequest represents the request body for recording vitals.
type CreateVitalsRequest struct {
	PatientID   string     `json:"patientId" binding:"required"`
	HeartRate   int        `json:"heartRate" binding:"required"`
	Systolic    int        `json:"systolic" binding:"required"`
	Diastolic   int        `json:"diastolic" binding:"required"`
	Temperature float64    `json:"temperature" binding:"required"`
	OxygenLevel float64    `json:"oxygenLevel" binding:"required"`
	Weight      float64    `json:"weight" binding:"required"`
	RecordedAt  *time.Time `json:"recordedAt"`
}

// CreateVitals handles recording a vitals reading for a patient.
func (h *VitalsHandler) CreateVitals(c *gin.Context) {
	var req CreateVitalsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	vitals := models.Vitals{
		PatientID:   req.PatientID,
		HeartRate:   req.HeartRate,
		Systolic:    req.Systolic,
		Diastolic:   req.Diastolic,
		Temperature: req.Temperature,
		OxygenLevel: req.OxygenLevel,
		Weight:      req.Weight,
		RecordedAt:  recordedAt,
	}
	if err := h.DB.Create(&vitals).Error; err != nil {
		utils.InternalServerError(c, "Failed to create vitals: "+err.Error())
		return
	}

	utils.Created(c, "Vitals recorded successfully", vitals)
}

// UpdateVitalsRequest represents the request body for updating a vitals
// record.
type UpdateVitalsRequest struct {
	HeartRate   *int       `json:"heartRate"`
	Systolic    *int       `json:"systolic"`
	Diastolic   *int       `json:"diastolic"`
	Temperature *float64   `json:"temperature"`
	OxygenLevel *float64   `json:"oxygenLevel"`
	Weight      *float64   `json:"weight"`
	RecordedAt  *time.Time `json:"recordedAt"`
}

// UpdateVitals handles updating a vitals record by ID.
func (h *VitalsHandler) UpdateVitals(c *gin.Context) {
	var req UpdateVitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var vitals models.Vitals
	if err := h.DB.First(&vitals, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vitals not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if req.HeartRate != nil {
		vitals.HeartRate = *req.HeartRate
	}
	if req.Systolic != nil {
		vitals.Systolic = *req.Systolic
	}
	if req.Diastolic != nil {
		vitals.Diastolic = *req.Diastolic
	}
	if req.Temperature != nil {
		vitals.Temperature = *req.Temperature
	}
	if req.OxygenLevel != nil {
		vitals.OxygenLevel = *req.OxygenLevel
	}
	if req.Weight != nil {
		vitals.Weight = *req.Weight
	}
	if req.RecordedAt != nil {
		vitals.RecordedAt = *req.RecordedAt
	}

	if err := h.DB.Save(&vitals).Error; err != nil {
		utils.InternalServerError(c, "Failed to update vitals: "+err.Error())
		return
	}

	utils.Success(c, "Vitals updated successfully", vitals)
}

// DeleteVitals handles deleting a vitals record by ID.
func (h *VitalsHandler) DeleteVitals(c *gin.Context) {
	var vitals models.Vitals
	if err := h.DB.First(&vitals, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Vitals not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&vitals).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete vitals: "+err.Error())
		return
	}

	utils.Success(c, "Vitals deleted", nil)
}
