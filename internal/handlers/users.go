package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caretrack-server/internal/authz"
	"caretrack-server/internal/middleware"
	"caretrack-server/internal/models"
	"caretrack-server/internal/utils"
)

// UserHandler handles user-related requests.
type UserHandler struct {
	DB     *gorm.DB
	Policy *authz.Policy
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB, policy *authz.Policy) *UserHandler {
	return &UserHandler{DB: db, Policy: policy}
}

// CreateUserRequest represents the request body for creating a user by an admin.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin patient family staff"`
}

// CreateUser handles creating a new user (admin).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existingUser models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.BadRequest(c, "Email already in use")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.Role(req.Role),
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	utils.Created(c, "User created successfully", user.Sanitize())
}

// GetUsers handles the user listing. Admins get every user; staff and family
// get exactly the patients they are linked to.
func (h *UserHandler) GetUsers(c *gin.Context) {
	callerID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	callerRole, _ := middleware.GetUserRoleFromContext(c)

	var users []models.User
	if callerRole == models.RoleAdmin {
		if err := h.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			utils.InternalServerError(c, "Failed to fetch users: "+err.Error())
			return
		}
	} else {
		patientIDs, err := h.Policy.VisiblePatientIDs(callerID)
		if err != nil {
			utils.InternalServerError(c, "Failed to resolve linked patients: "+err.Error())
			return
		}
		if len(patientIDs) > 0 {
			if err := h.DB.Where("id IN ?", patientIDs).Order("created_at DESC").Find(&users).Error; err != nil {
				utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
				return
			}
		}
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}

	utils.Success(c, "Users fetched successfully", sanitized)
}

// UpdateUserRequest represents the request body for updating a user's role.
type UpdateUserRequest struct {
	Role string `json:"role" binding:"required,oneof=admin patient family staff"`
}

// UpdateUser handles changing a user's role (admin).
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	user.Role = models.Role(req.Role)
	if err := h.DB.Save(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to update user: "+err.Error())
		return
	}

	utils.Success(c, "User updated successfully", user.Sanitize())
}

// DeleteUser handles deleting a user by ID (admin). Link entries and clinical
// records pointing at the user are left in place; readers treat them as
// dangling references and skip them.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.User{}, "id = ?", userID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete user: "+err.Error())
		return
	}

	utils.Success(c, "User deleted", nil)
}
