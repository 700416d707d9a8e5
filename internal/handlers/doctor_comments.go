package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caretrack-server/internal/middleware"
	"caretrack-server/internal/models"
	"caretrack-server/internal/utils"
)

// DoctorCommentHandler handles doctor comment requests.
type DoctorCommentHandler struct {
	DB *gorm.DB
}

// NewDoctorCommentHandler creates a new DoctorCommentHandler.
func NewDoctorCommentHandler(db *gorm.DB) *DoctorCommentHandler {
	return &DoctorCommentHandler{DB: db}
}

// GetComments handles listing doctor comments, newest first, optionally
// filtered by patient id. The authoring staff user is resolved.
func (h *DoctorCommentHandler) GetComments(c *gin.Context) {
	query := h.DB.Preload("Staff").Order("created_at DESC")
	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var comments []models.DoctorComment
	if err := query.Find(&comments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch comments: "+err.Error())
		return
	}

	utils.Success(c, "Comments fetched successfully", comments)
}

// CreateCommentRequest represents the request body for adding a doctor
// comment.
type CreateCommentRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// CreateComment handles adding a doctor comment. The authoring staff id is
// taken from the caller's token.
func (h *DoctorCommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	staffID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	comment := models.DoctorComment{
		PatientID: req.PatientID,
		StaffID:   staffID,
		Comment:   req.Comment,
	}
	if err := h.DB.Create(&comment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create comment: "+err.Error())
		return
	}

	h.DB.Preload("Staff").First(&comment, "id = ?", comment.ID)
	utils.Created(c, "Comment created successfully", comment)
}

// DeleteComment handles deleting a doctor comment by ID.
func (h *DoctorCommentHandler) DeleteComment(c *gin.Context) {
	var comment models.DoctorComment
	if err := h.DB.First(&comment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Comment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&comment).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete comment: "+err.Error())
		return
	}

	utils.Success(c, "Comment deleted", nil)
}
