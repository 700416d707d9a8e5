package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caretrack-server/internal/middleware"
	"caretrack-server/internal/models"
	"caretrack-server/internal/utils"
)

// InquiryHandler handles inquiry requests.
type InquiryHandler struct {
	DB *gorm.DB
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(db *gorm.DB) *InquiryHandler {
	return &InquiryHandler{DB: db}
}

// GetInquiries handles listing inquiries, newest first, with the submitting
// user resolved.
func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	var inquiries []models.Inquiry
	if err := h.DB.Preload("User").Order("created_at DESC").Find(&inquiries).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch inquiries: "+err.Error())
		return
	}
	utils.Success(c, "Inquiries fetched successfully", inquiries)
}

// CreateInquiryRequest represents the request body for submitting an inquiry.
type CreateInquiryRequest struct {
	Message string `json:"message" binding:"required"`
}

// CreateInquiry handles submitting an inquiry. The submitting user id is
// taken from the caller's token.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	inquiry := models.Inquiry{
		UserID:  userID,
		Message: req.Message,
	}
	if err := h.DB.Create(&inquiry).Error; err != nil {
		utils.InternalServerError(c, "Failed to create inquiry: "+err.Error())
		return
	}

	h.DB.Preload("User").First(&inquiry, "id = ?", inquiry.ID)
	utils.Created(c, "Inquiry created successfully", inquiry)
}

// DeleteInquiry handles deleting an inquiry by ID.
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := h.DB.First(&inquiry, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Inquiry not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&inquiry).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete inquiry: "+err.Error())
		return
	}

	utils.Success(c, "Inquiry deleted", nil)
}
