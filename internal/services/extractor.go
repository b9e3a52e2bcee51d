package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// Extractor pulls structured records out of free-form or OCR text.
// GeminiExtractor is the production implementation; tests substitute fakes,
// and a nil extractor degrades the assistant to guided collection only.
type Extractor interface {
	ExtractContact(ctx context.Context, text string) (*models.ContactInfo, error)
	ExtractInvoice(ctx context.Context, text string) (*models.InvoiceData, error)
}

// GeminiExtractor runs JSON-mode extraction prompts against the Gemini API.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates the extractor from GEMINI_API_KEY and
// GEMINI_MODEL.
func NewGeminiExtractor(ctx context.Context) (*GeminiExtractor, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{client: client, model: model}, nil
}

const contactPrompt = `Extract contact details from the text below. Respond with a single JSON object using exactly these keys: "name", "phone_number", "address", "city", "state", "pincode", "country". Use an empty string for anything the text does not state. Do not guess.

Text:
%s`

const invoicePrompt = `Extract invoice details from the text below. Respond with a single JSON object using exactly these keys: "customer_name" (string), "customer_phone" (string), "items" (array of objects with "item_name" and integer "quantity"), "city_cf" (string), "code_cf" (string), "vehicle_cf" (string). Use an empty string, empty array or zero for anything the text does not state. Do not guess.

Text:
%s`

// ExtractContact asks the model for a contact record.
func (g *GeminiExtractor) ExtractContact(ctx context.Context, text string) (*models.ContactInfo, error) {
	raw, err := g.generateJSON(ctx, fmt.Sprintf(contactPrompt, text))
	if err != nil {
		return nil, err
	}

	var contact models.ContactInfo
	if err := json.Unmarshal(raw, &contact); err != nil {
		return nil, fmt.Errorf("decode contact extraction: %w", err)
	}
	return &contact, nil
}

// ExtractInvoice asks the model for a full invoice record.
func (g *GeminiExtractor) ExtractInvoice(ctx context.Context, text string) (*models.InvoiceData, error) {
	raw, err := g.generateJSON(ctx, fmt.Sprintf(invoicePrompt, text))
	if err != nil {
		return nil, err
	}

	var invoice models.InvoiceData
	if err := json.Unmarshal(raw, &invoice); err != nil {
		return nil, fmt.Errorf("decode invoice extraction: %w", err)
	}
	return &invoice, nil
}

func (g *GeminiExtractor) generateJSON(ctx context.Context, prompt string) ([]byte, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini extraction failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}

	// JSON mode still occasionally wraps the object in a code fence.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	log.Printf("Gemini extraction response: %s", text)
	return []byte(strings.TrimSpace(text)), nil
}
