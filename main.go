package main

import (
	"context"
	"fmt"
	"log"

	"github.com/slicycode/file-drive/config"
	"github.com/slicycode/file-drive/database"
	"github.com/slicycode/file-drive/handlers"
	"github.com/slicycode/file-drive/logger"
	"github.com/slicycode/file-drive/middleware"
	"github.com/slicycode/file-drive/models"
	"github.com/slicycode/file-drive/repositories"
	"github.com/slicycode/file-drive/services"
	"github.com/slicycode/file-drive/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting file-drive service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.Log.Level)

	if err := database.InitMySQL(&cfg.Database); err != nil {
		log.Fatalf("init mysql failed: %v", err)
	}

	database.DB.AutoMigrate(
		&models.User{},
		&models.OrgMembership{},
		&models.File{},
		&models.Favorite{},
	)
	log.Println("database migration completed")

	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("init redis failed: %v", err)
	}

	blobs, err := storage.NewS3BlobStore(context.Background(), &cfg.Blob)
	if err != nil {
		log.Fatalf("init blob storage failed: %v", err)
	}

	repoContainer := repositories.NewGormRepositories(database.DB, database.RedisClient).BuildContainer()
	serviceContainer := services.NewContainer(repoContainer, blobs)
	handlers.SetServices(serviceContainer)

	services.StartSweeper(serviceContainer.Sweeper, &cfg.Sweeper)
	log.Println("purge sweeper started")

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestLogger())
	setupRoutes(r, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine, cfg *config.Config) {
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	// Identity-provider sync webhooks, not user-callable.
	internal := r.Group("/internal/sync")
	internal.Use(middleware.SyncSecretMiddleware(cfg.Auth.SyncSecret))
	{
		internal.POST("/users", handlers.SyncCreateUser)
		internal.PUT("/users", handlers.SyncUpdateUser)
		internal.POST("/memberships", handlers.SyncAddOrgMembership)
		internal.PUT("/memberships", handlers.SyncUpdateMembershipRole)
	}

	// Reads tolerate missing sessions and degrade to empty results.
	reads := api.Group("")
	reads.Use(middleware.OptionalAuthMiddleware())
	{
		reads.GET("/me", handlers.GetMe)
		reads.GET("/users/:id/profile", handlers.GetUserProfile)
		reads.GET("/files", handlers.ListFiles)
		reads.GET("/favorites", handlers.ListFavorites)
	}

	// Mutations require a session outright.
	mutations := api.Group("")
	mutations.Use(middleware.AuthMiddleware())
	{
		mutations.POST("/files/upload-url", handlers.RequestUploadSlot)
		mutations.POST("/files", handlers.CreateFile)
		mutations.GET("/files/:id/url", handlers.GetFileURL)
		mutations.DELETE("/files/:id", handlers.SoftDeleteFile)
		mutations.POST("/files/:id/restore", handlers.RestoreFile)
		mutations.POST("/files/:id/favorite", handlers.ToggleFavorite)
	}
}
