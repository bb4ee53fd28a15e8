package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"

	"go-news-app/internal/auth"
	"go-news-app/internal/cache"
	"go-news-app/internal/config"
	"go-news-app/internal/data"
	"go-news-app/internal/handler"
	"go-news-app/internal/logger"
	"go-news-app/internal/middleware"
	"go-news-app/internal/service"
	"go-news-app/internal/storage"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log)

	// --- Pre-flight Checks ---
	if cfg.Session.SecretKey == "" || cfg.Session.SecretKey == "CHANGE_ME_IN_PRODUCTION_SECRET!!" {
		log.Fatal(errors.New("session secret key not set"), "Please set a secure NEWS_SESSION_SECRETKEY environment variable.")
	}

	// --- Database Initialization and Migration ---
	log.Info("Applying database migrations...")
	if err := data.ApplyMigrations(cfg.DB.DSN, "migrations"); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	// --- Session Management Setup ---
	sessionManager := scs.New()
	sessionManager.Store = postgresstore.New(db.DB)
	sessionManager.Lifetime = time.Duration(cfg.Session.Lifetime) * time.Hour
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Server.TLS.Enabled

	// --- Authentication and Authorization Setup ---
	log.Info("Initializing authentication and authorization...")
	authenticator, err := auth.NewAuthenticator(&cfg.OIDC)
	if err != nil {
		log.Fatal(err, "Failed to initialize authenticator")
	}
	enforcer, err := auth.NewEnforcer("pgx", cfg.DB.DSN, "auth_model.conf")
	if err != nil {
		log.Fatal(err, "Failed to initialize enforcer")
	}
	auth.SeedDefaultPolicies(enforcer, log)
	log.Info("Auth components initialized and policies seeded.")

	// --- Cache Initialization ---
	log.Info("Initializing SQLite cache...")
	localCache, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal(err, "Failed to initialize cache")
	}
	defer localCache.Close()
	log.Info("Cache initialized.")

	// --- Object Storage Setup ---
	log.Info("Initializing object storage...")
	objectStore, err := storage.NewS3Store(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatal(err, "Failed to initialize object storage")
	}
	log.Info("Object storage initialized.")

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	articleRepository := data.NewSQLArticleRepository(db)
	categoryRepository := data.NewCategoryRepository(db)
	commentRepository := data.NewCommentRepository(db)
	settingRepository := data.NewSettingRepository(db)

	articleService := service.NewArticleService(articleRepository, categoryRepository, localCache)
	commentService := service.NewCommentService(commentRepository, articleRepository)
	categoryService := service.NewCategoryService(categoryRepository, articleRepository)
	analyticsService := service.NewAnalyticsService(articleRepository, categoryRepository)
	settingsService := service.NewSettingsService(settingRepository, localCache)
	mediaService := service.NewMediaService(objectStore)

	handlers := handler.Handlers{
		Articles:   handler.NewArticleHandler(articleService, commentService, log),
		Comments:   handler.NewCommentHandler(commentService, articleService, log),
		Categories: handler.NewCategoryHandler(categoryService, articleService, log),
		Analytics:  handler.NewAnalyticsHandler(analyticsService, log),
		Settings:   handler.NewSettingsHandler(settingsService, log),
		Media:      handler.NewMediaHandler(mediaService, log),
		Auth:       handler.NewAuthHandler(authenticator, sessionManager, cfg.Admin.Emails),
		Seo:        handler.NewSeoHandler(articleService, cfg.Server.BaseURL),
	}

	authzMiddleware := middleware.Authorizer(enforcer, sessionManager)

	// --- Router Setup ---
	// The router is the central hub that directs incoming requests to the correct handlers.
	router := handler.NewRouter(handlers, sessionManager, authzMiddleware, log)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
