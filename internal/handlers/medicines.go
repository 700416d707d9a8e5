package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caretrack-server/internal/models"
	"caretrack-server/internal/utils"
)

// MedicineHandler handles medicine inventory requests.
type MedicineHandler struct {
	DB *gorm.DB
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(db *gorm.DB) *MedicineHandler {
	return &MedicineHandler{DB: db}
}

// GetMedicines handles listing the inventory sorted by name.
func (h *MedicineHandler) GetMedicines(c *gin.Context) {
	var medicines []models.Medicine
	if err := h.DB.Order("name").Find(&medicines).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch medicines: "+err.Error())
		return
	}
	utils.Success(c, "Medicines fetched successfully", medicines)
}

// MedicineRequest represents the request body for creating or updating a
// medicine.
type MedicineRequest struct {
	Name       string    `json:"name" binding:"required"`
	Quantity   *int      `json:"quantity" binding:"required"`
	ExpiryDate time.Time `json:"expiryDate" binding:"required"`
}

// CreateMedicine handles adding a medicine to the inventory (admin).
func (h *MedicineHandler) CreateMedicine(c *gin.Context) {
	var req MedicineRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	medicine := models.Medicine{
		Name:       req.Name,
		Quantity:   *req.Quantity,
		ExpiryDate: req.ExpiryDate,
	}
	if err := h.DB.Create(&medicine).Error; err != nil {
		utils.InternalServerError(c, "Failed to create medicine: "+err.Error())
		return
	}

	utils.Created(c, "Medicine created successfully", medicine)
}

// UpdateMedicine handles updating a medicine by ID (admin).
func (h *MedicineHandler) UpdateMedicine(c *gin.Context) {
	var req MedicineRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var medicine models.Medicine
	if err := h.DB.First(&medicine, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medicine not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	medicine.Name = req.Name
	medicine.Quantity = *req.Quantity
	medicine.ExpiryDate = req.ExpiryDate

	if err := h.DB.Save(&medicine).Error; err != nil {
		utils.InternalServerError(c, "Failed to update medicine: "+err.Error())
		return
	}

	utils.Success(c, "Medicine updated successfully", medicine)
}

// DeleteMedicine handles deleting a medicine by ID (admin).
func (h *MedicineHandler) DeleteMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := h.DB.First(&medicine, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medicine not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&medicine).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete medicine: "+err.Error())
		return
	}

	utils.Success(c, "Medicine deleted", nil)
}
