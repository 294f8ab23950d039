package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	crmapp "github.com/labworks/backend/internal/application/crm"
	proposalapp "github.com/labworks/backend/internal/application/proposal"
	timetrackerapp "github.com/labworks/backend/internal/application/timetracker"
	"github.com/labworks/backend/internal/infrastructure/config"
	"github.com/labworks/backend/internal/infrastructure/logger"
	"github.com/labworks/backend/internal/infrastructure/persistence"
	"github.com/labworks/backend/internal/infrastructure/printing"
	"github.com/labworks/backend/internal/interfaces/http/handler"
	"github.com/labworks/backend/internal/interfaces/http/middleware"
	"github.com/labworks/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting LabWorks backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Open database and run migrations
	db, err := persistence.OpenWithLogger(cfg.Database.Path, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	noteRepo := persistence.NewGormContactNoteRepository(db.DB)
	proposalRepo := persistence.NewGormProposalRepository(db.DB)
	timeEntryRepo := persistence.NewGormTimeEntryRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)

	// Initialize the PDF pipeline
	templates, err := printing.NewTemplateEngine()
	if err != nil {
		log.Fatal("Failed to parse document templates", zap.Error(err))
	}
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.PDF.RenderTimeout,
		RemoteURL:      cfg.PDF.RemoteURL,
		NoSandbox:      cfg.PDF.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	// Initialize application services
	clientService := crmapp.NewClientService(clientRepo)
	projectService := crmapp.NewProjectService(projectRepo)
	noteService := crmapp.NewContactNoteService(noteRepo)
	proposalService := proposalapp.NewService(proposalRepo, templates, renderer)
	timeEntryService := timetrackerapp.NewTimeEntryService(timeEntryRepo)
	invoiceService := timetrackerapp.NewInvoiceService(invoiceRepo, timeEntryRepo, projectRepo, templates, renderer)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))

	// Health check endpoint (outside the API prefix)
	systemHandler := handler.NewSystemHandler(db, version)
	engine.GET("/health", systemHandler.Health)

	// Register API routes
	r := router.NewRouter(engine)
	r.Register(systemHandler)
	r.Register(handler.NewClientHandler(clientService))
	r.Register(handler.NewProjectHandler(projectService))
	r.Register(handler.NewNoteHandler(noteService))
	r.Register(handler.NewProposalHandler(proposalService))
	r.Register(handler.NewTimeEntryHandler(timeEntryService))
	r.Register(handler.NewInvoiceHandler(invoiceService))
	r.Setup()

	// Static frontend: anything the API doesn't claim falls through to the
	// file server, so / serves public/index.html
	engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Static.Dir))))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
