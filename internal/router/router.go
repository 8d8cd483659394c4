package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/handler"
	"github.com/jdbernardo16/project-manager/internal/middleware"
	"github.com/jdbernardo16/project-manager/internal/model"
	"gorm.io/gorm"
)

type Deps struct {
	DB               *gorm.DB
	JWTSecret        string
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	ProjectHandler   *handler.ProjectHandler
	ResourceHandler  *handler.ResourceHandler
	DashboardHandler *handler.DashboardHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")

	// Public routes (no auth)
	auth := api.Group("/auth")
	{
		auth.POST("/login", deps.AuthHandler.Login)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		// Auth
		authed.GET("/auth/me", deps.AuthHandler.GetMe)
		authed.PUT("/auth/password", deps.AuthHandler.ChangePassword)

		// Admin routes
		admin := authed.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", deps.UserHandler.ListUsers)
			admin.PUT("/users/:id/role", deps.UserHandler.UpdateUserRole)
		}

		// Dashboard
		authed.GET("/dashboard", deps.DashboardHandler.Get)

		// Projects
		projects := authed.Group("/projects")
		{
			projects.GET("", deps.ProjectHandler.List)
			projects.POST("", middleware.RequireRole(model.RoleProjectManager), deps.ProjectHandler.Create)
			projects.GET("/available-resources", deps.ProjectHandler.AvailableResources)
			projects.GET("/:id", deps.ProjectHandler.GetDetail)
			projects.PUT("/:id", middleware.RequireRole(model.RoleProjectManager), deps.ProjectHandler.Update)
			projects.DELETE("/:id", middleware.RequireRole(model.RoleProjectManager), deps.ProjectHandler.Delete)
			projects.GET("/:id/calendar", deps.ProjectHandler.Calendar)
		}

		// Resources
		resources := authed.Group("/resources")
		{
			resources.GET("", deps.ResourceHandler.List)
			resources.POST("", middleware.RequireRole(model.RoleProjectManager), deps.ResourceHandler.Create)
			resources.GET("/:id", deps.ResourceHandler.GetDetail)
			resources.PUT("/:id", middleware.RequireRole(model.RoleProjectManager), deps.ResourceHandler.Update)
			resources.DELETE("/:id", middleware.RequireRole(model.RoleProjectManager), deps.ResourceHandler.Delete)
			resources.PUT("/:id/toggle-availability", middleware.RequireRole(model.RoleProjectManager), deps.ResourceHandler.ToggleAvailability)
		}
	}
}
