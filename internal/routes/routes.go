package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"caretrack-server/internal/authz"
	"caretrack-server/internal/config"
	"caretrack-server/internal/handlers"
	"caretrack-server/internal/links"
	"caretrack-server/internal/middleware"
	"caretrack-server/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize services and handlers
	policy := authz.NewPolicy(authz.NewGormLinkReader(db))
	linkService := links.NewService(links.NewGormRepository(db), links.NewGormUserDirectory(db))

	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, policy)
	linkHandler := handlers.NewPatientLinkHandler(linkService)
	vitalsHandler := handlers.NewVitalsHandler(db)
	commentHandler := handlers.NewDoctorCommentHandler(db)
	medicineHandler := handlers.NewMedicineHandler(db)
	inquiryHandler := handlers.NewInquiryHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		private.GET("/auth/me", authHandler.Me)

		// User management: listing is role-scoped inside the handler,
		// everything else is admin-only
		userRoutes := private.Group("/users")
		{
			userRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff, models.RoleFamily), userHandler.GetUsers)

			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Patient link management is admin-exclusive
		linkRoutes := private.Group("/patient-links")
		linkRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			linkRoutes.GET("", linkHandler.GetLinks)
			linkRoutes.POST("", linkHandler.CreateLink)
			linkRoutes.DELETE("/:id", linkHandler.DeleteLink)
		}

		// Vitals: staff and admin write, family may read
		vitalsRoutes := private.Group("/vitals")
		{
			vitalsRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff, models.RoleFamily), vitalsHandler.GetVitals)
			vitalsRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), vitalsHandler.CreateVitals)
			vitalsRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), vitalsHandler.UpdateVitals)
			vitalsRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), vitalsHandler.DeleteVitals)
		}

		// Doctor comments: staff and admin write, family may read
		commentRoutes := private.Group("/doctor-comments")
		{
			commentRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff, models.RoleFamily), commentHandler.GetComments)
			commentRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), commentHandler.CreateComment)
			commentRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), commentHandler.DeleteComment)
		}

		// Medicine inventory: admin manages, staff may view
		medicineRoutes := private.Group("/medicines")
		{
			medicineRoutes.GET("", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), medicineHandler.GetMedicines)
			medicineRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), medicineHandler.CreateMedicine)
			medicineRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), medicineHandler.UpdateMedicine)
			medicineRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), medicineHandler.DeleteMedicine)
		}

		// Inquiries: family submits and manages, admin oversees
		inquiryRoutes := private.Group("/inquiries")
		inquiryRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleFamily))
		{
			inquiryRoutes.GET("", inquiryHandler.GetInquiries)
			inquiryRoutes.POST("", inquiryHandler.CreateInquiry)
			inquiryRoutes.DELETE("/:id", inquiryHandler.DeleteInquiry)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
