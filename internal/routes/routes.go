package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GaganNGowda/Invoice-Generator/internal/handlers"
	"github.com/GaganNGowda/Invoice-Generator/internal/middleware"
	"github.com/GaganNGowda/Invoice-Generator/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, conversation *services.ConversationService, documents *services.DocumentTextService, billing services.BillingClient) {
	healthHandler := handlers.NewHealthHandler("1.0.0")
	assistantHandler := handlers.NewAssistantHandler(conversation, documents, billing)
	whatsappHandler := handlers.NewWhatsAppHandler(conversation)

	// Root and health endpoints
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Conversational endpoints
	app.Post("/process", assistantHandler.Process)
	app.Post("/upload-document", assistantHandler.UploadDocument)
	app.Get("/download-invoice-pdf/:invoiceID", assistantHandler.DownloadInvoicePDF)

	// WhatsApp channel
	webhook := app.Group("/webhook", middleware.ValidateTwilioSignature())
	webhook.Post("/whatsapp", whatsappHandler.HandleWebhook)
}
