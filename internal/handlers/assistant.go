package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/GaganNGowda/Invoice-Generator/internal/i18n"
	"github.com/GaganNGowda/Invoice-Generator/internal/models"
	"github.com/GaganNGowda/Invoice-Generator/internal/services"
	"github.com/GaganNGowda/Invoice-Generator/internal/utils"
)

// AssistantHandler exposes the conversational endpoints: one text turn, one
// document upload, and the invoice PDF passthrough.
type AssistantHandler struct {
	conversation *services.ConversationService
	documents    *services.DocumentTextService
	billing      services.BillingClient
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(conversation *services.ConversationService, documents *services.DocumentTextService, billing services.BillingClient) *AssistantHandler {
	return &AssistantHandler{
		conversation: conversation,
		documents:    documents,
		billing:      billing,
	}
}

// Process runs one conversational turn.
func (h *AssistantHandler) Process(c *fiber.Ctx) error {
	var req models.ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Text == "" {
		return c.JSON(&models.Reply{
			Action:  models.ActionError,
			Status:  models.StatusError,
			Message: i18n.T("no_text_provided", req.Language, nil),
		})
	}

	if req.SessionID == "" {
		req.SessionID = utils.NewSessionID()
	}

	reply := h.conversation.Handle(c.Context(), &req)
	return c.JSON(reply)
}

// UploadDocument extracts text from an uploaded file and, when a customer
// collection is in progress, feeds the extraction into the conversation.
func (h *AssistantHandler) UploadDocument(c *fiber.Ctx) error {
	language := c.FormValue("language")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(&models.Reply{
			Action:  models.ActionError,
			Status:  models.StatusError,
			Message: i18n.T("failed_to_upload_file", language, map[string]string{"error_message": err.Error()}),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(&models.Reply{
			Action:  models.ActionError,
			Status:  models.StatusError,
			Message: i18n.T("failed_to_upload_file", language, map[string]string{"error_message": err.Error()}),
		})
	}
	defer file.Close()

	text, err := h.documents.ExtractText(file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("⚠️ Document text extraction failed for %s: %v", fileHeader.Filename, err)
		return c.JSON(&models.Reply{
			Action:  models.ActionError,
			Status:  models.StatusError,
			Message: i18n.T("failed_to_upload_file", language, map[string]string{"error_message": err.Error()}),
		})
	}

	sessionID := c.FormValue("session_id")
	if sessionID == "" {
		sessionID = utils.NewSessionID()
	}

	reply := h.conversation.ConsumeDocument(c.Context(), sessionID, text, language, fileHeader.Filename)
	return c.JSON(reply)
}

// DownloadInvoicePDF streams the rendered invoice PDF from the billing
// provider.
func (h *AssistantHandler) DownloadInvoicePDF(c *fiber.Ctx) error {
	invoiceID := c.Params("invoiceID")
	if invoiceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invoice id is required",
		})
	}

	pdf, err := h.billing.InvoicePDF(c.Context(), invoiceID)
	if err != nil {
		log.Printf("❌ Failed to fetch invoice PDF %s: %v", invoiceID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", invoiceID))
	return c.Send(pdf)
}
