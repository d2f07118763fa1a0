package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/config"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/handler"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/repository"
	"github.com/Intesar-Tahmid/Doctor-AI-Assistant/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("MedConnect Doctor AI Assistant")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The classifier credential is required before any request is served
	if !cfg.Gemini.Enabled {
		log.Fatalf("GEMINI_API_KEY is not set - the symptom classifier cannot run without it")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize the directory backend
	var repo repository.DoctorRepository
	var pgRepo *repository.PostgresRepository
	switch cfg.Directory.Backend {
	case "postgres":
		pgRepo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		repo = pgRepo
		log.Println("✅ Using PostgreSQL doctor directory")
	case "csv":
		repo = repository.NewCSVRepository(cfg.Directory.CSVPath)
		log.Printf("✅ Using CSV doctor directory: %s", cfg.Directory.CSVPath)
	default:
		log.Fatalf("Unknown directory backend: %s (expected csv or postgres)", cfg.Directory.Backend)
	}
	defer repo.Close()

	// Initialize Gemini client
	geminiClient := service.NewGeminiClient(&cfg.Gemini)
	log.Printf("✅ Gemini client initialized")
	log.Printf("   - API Base: %s", cfg.Gemini.APIBase)
	log.Printf("   - Model: %s", cfg.Gemini.Model)
	log.Printf("   - Embedding model: %s", cfg.Gemini.EmbeddingModel)
	log.Printf("   - Timeout: %ds", cfg.Gemini.Timeout)

	// Initialize services
	classifier := service.NewSpecialtyClassifier(geminiClient, cfg.Classifier.FallbackSpecialty)
	if cfg.Classifier.FallbackSpecialty != "" {
		log.Printf("   - Fallback specialty: %s", cfg.Classifier.FallbackSpecialty)
	}
	oracle := service.NewRandomAvailability(cfg.Directory.AvailabilityRate)
	directoryService := service.NewDirectoryService(repo, oracle)
	triageService := service.NewTriageService(classifier, directoryService)
	bookingService := service.NewBookingService(directoryService)

	// Department suggestions need the vector store, so PostgreSQL only
	var suggestService *service.SuggestService
	if pgRepo != nil {
		suggestService = service.NewSuggestService(geminiClient, pgRepo)
		log.Println("✅ Department suggestions enabled (pgvector)")
	}

	log.Println("✅ Services initialized")

	// Initialize handlers
	classifyHandler := handler.NewClassifyHandler(classifier)
	searchHandler := handler.NewSearchHandler(directoryService, triageService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	suggestHandler := handler.NewSuggestHandler(suggestService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "medconnect-core",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Classification and search
		apiV1.POST("/classify", classifyHandler.Classify)
		apiV1.POST("/triage", searchHandler.Triage)
		apiV1.POST("/doctors/search", searchHandler.Search)
		apiV1.GET("/doctors/:id", searchHandler.GetDoctor)

		// Mock booking
		apiV1.GET("/bookings/slots", bookingHandler.Slots)
		apiV1.POST("/bookings", bookingHandler.Book)

		// Department suggestions (PostgreSQL backend only)
		apiV1.POST("/specialties/suggest", suggestHandler.Suggest)
		apiV1.POST("/specialties/embeddings", suggestHandler.UpsertEmbeddings)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
