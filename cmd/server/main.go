package main

import (
	"log"
	"math/rand"
	"time"

	"tagespresse/internal/config"
	"tagespresse/internal/db"
	"tagespresse/internal/handlers"
	"tagespresse/internal/logging"
	"tagespresse/internal/repository"
	"tagespresse/internal/router"
	"tagespresse/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()

	if err := logging.Init(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Logger.Sync()

	// Initialize Database
	conn, err := db.Init(cfg)
	if err != nil {
		logging.Sugar.Fatalw("database init failed", "err", err)
	}

	articles := repository.NewArticleRepository(conn)
	comments := repository.NewCommentRepository(conn)

	// Seed demo data when the store is empty (always after a dev-mode reset)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seed.New(articles, comments, rng, logging.Logger).Run(); err != nil {
		logging.Sugar.Fatalw("seeding failed", "err", err)
	}

	// Initialize Gin
	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = router.LoadTemplates(cfg.TemplateDir)

	// Static Assets
	r.Static("/static", cfg.StaticDir)

	// Handlers
	articleHandler := handlers.NewArticleHandler(articles, comments)
	router.RegisterRoutes(r, articleHandler)

	logging.Sugar.Infof("Tagespresse server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logging.Sugar.Fatalw("server stopped", "err", err)
	}
}
