package handlers

import (
	"github.com/gin-gonic/gin"

	"caretrack-server/internal/links"
	"caretrack-server/internal/models"
	"caretrack-server/internal/utils"
)

// PatientLinkHandler handles patient link requests (admin only).
type PatientLinkHandler struct {
	Service *links.Service
}

// NewPatientLinkHandler creates a new PatientLinkHandler.
func NewPatientLinkHandler(service *links.Service) *PatientLinkHandler {
	return &PatientLinkHandler{Service: service}
}

// GetLinks handles listing link entries in flattened form, optionally
// filtered by patient id.
func (h *PatientLinkHandler) GetLinks(c *gin.Context) {
	views, err := h.Service.List(c.Query("patientId"))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Patient links fetched successfully", views)
}

// CreateLinkRequest represents the request body for linking a caregiver to a
// patient.
type CreateLinkRequest struct {
	PatientID    string `json:"patientId" binding:"required"`
	LinkedUserID string `json:"linkedUserId" binding:"required"`
	Relationship string `json:"relationship" binding:"required,oneof=family staff"`
}

// CreateLink handles linking a caregiver to a patient.
func (h *PatientLinkHandler) CreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	view, err := h.Service.Create(req.PatientID, req.LinkedUserID, models.Role(req.Relationship))
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.Created(c, "Patient link created successfully", view)
}

// DeleteLink handles deleting a link entry by id.
func (h *PatientLinkHandler) DeleteLink(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Link deleted", nil)
}
