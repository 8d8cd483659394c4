package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/config"
	"github.com/jdbernardo16/project-manager/internal/handler"
	"github.com/jdbernardo16/project-manager/internal/model"
	"github.com/jdbernardo16/project-manager/internal/router"
	"github.com/jdbernardo16/project-manager/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Resource{},
		&model.Project{},
		&model.Assignment{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Services
	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	projectService := service.NewProjectService(db)
	resourceService := service.NewResourceService(db)
	dashboardService := service.NewDashboardService(db, rdb, cfg.Dashboard.ProjectLimit, cfg.Dashboard.CacheTTLSeconds)

	// First-run admin account
	if err := authService.SeedAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService, dashboardService)
	resourceHandler := handler.NewResourceHandler(resourceService, dashboardService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup routes
	router.Setup(r, router.Deps{
		DB:               db,
		JWTSecret:        cfg.JWT.Secret,
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		ProjectHandler:   projectHandler,
		ResourceHandler:  resourceHandler,
		DashboardHandler: dashboardHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
