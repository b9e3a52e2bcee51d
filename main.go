package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/GaganNGowda/Invoice-Generator/database"
	"github.com/GaganNGowda/Invoice-Generator/internal/jobs"
	"github.com/GaganNGowda/Invoice-Generator/internal/routes"
	"github.com/GaganNGowda/Invoice-Generator/internal/services"
	"github.com/GaganNGowda/Invoice-Generator/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	// Initialize storage
	var store storage.Store

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory session storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect()

		dbStore, err := storage.NewDatabaseStore(database.DB)
		if err != nil {
			log.Fatal("Failed to migrate session storage:", err)
		}
		store = dbStore
		log.Println("✅ Using PostgreSQL session storage")
	}

	// Billing client
	tokens := services.NewStaticTokenSource(os.Getenv("ZOHO_ACCESS_TOKEN"))
	billing := services.NewZohoService(tokens)

	// LLM extraction is optional; without a key the assistant runs the guided
	// flows only.
	var extractor services.Extractor
	if os.Getenv("GEMINI_API_KEY") != "" {
		gemini, err := services.NewGeminiExtractor(context.Background())
		if err != nil {
			log.Printf("⚠️  Gemini extractor not initialized: %v", err)
		} else {
			extractor = gemini
			log.Println("✅ Gemini extractor initialized")
		}
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set - extraction pre-fill disabled")
	}

	// Pincode matcher is optional; without the CSV, non-exact pincodes are
	// simply rejected.
	var pincodes *services.PincodeMatcher
	if path := os.Getenv("PINCODE_CSV"); path != "" {
		matcher, err := services.NewPincodeMatcher(path)
		if err != nil {
			log.Printf("⚠️  Pincode matcher not initialized: %v", err)
		} else {
			pincodes = matcher
			log.Println("✅ Pincode matcher initialized")
		}
	}

	conversation := services.NewConversationService(store, billing, extractor, pincodes)
	documents := services.NewDocumentTextService()

	// Sweep abandoned sessions
	sweeper := jobs.NewSessionSweeper(store)
	sweeper.Start()

	log.Println("✅ All services initialized")

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Invoice Generator Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	routes.SetupRoutes(app, conversation, documents, billing)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		sweeper.Stop()
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Invoice Generator Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Printf("🌍 Environment: %s", getEnvironment())
	log.Printf("🤖 Extraction: %s", getExtractionStatus(extractor))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func getEnvironment() string {
	if os.Getenv("INSTANCE_CONNECTION_NAME") != "" {
		return "Production (Cloud Run)"
	}
	return "Development (Local)"
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func getExtractionStatus(extractor services.Extractor) string {
	if extractor == nil {
		return "Disabled"
	}
	return "Gemini"
}
