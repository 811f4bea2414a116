package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"secondbrain/internal/config"
	"secondbrain/internal/database"
	"secondbrain/internal/middleware"
	"secondbrain/internal/modules/auth"
	"secondbrain/internal/modules/content"
	"secondbrain/internal/modules/share"
	jwtsvc "secondbrain/internal/pkg/jwt"
	"secondbrain/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.ConnectWithRetry(cfg.DatabaseURL, 10, 5*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)
	shareRepo := repository.NewShareLinkRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	contentService := content.NewService(contentRepo)
	contentHandler := content.NewHandler(contentService)

	shareService := share.NewService(shareRepo, contentRepo, cfg.ShareTTL)
	shareHandler := share.NewHandler(shareService, cfg.ShareBaseURL)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("/")
	{
		// public
		authHandler.RegisterPublicRoutes(root)

		// protected
		protected := root.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			contentHandler.RegisterRoutes(protected)
		}
	}

	v1 := r.Group("/api/v1")
	{
		shareHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			shareHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
