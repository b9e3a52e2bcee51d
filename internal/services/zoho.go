package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// Account-level constants for the Zoho Invoice organization. These IDs come
// from the provider account setup and are the same for every request.
const (
	zohoCurrencyID     = "2286520000000000064"
	zohoPaymentTermsID = "2286520000000166102"

	cfCityID    = "2286520000000029794"
	cfCodeID    = "2286520000000131080"
	cfVehicleID = "2286520000000136037"
)

// BillingClient is the surface of the invoicing provider the conversation
// needs. ZohoService is the production implementation; tests substitute fakes.
type BillingClient interface {
	FindCustomerByPhone(ctx context.Context, phone string) (string, error)
	CreateCustomer(ctx context.Context, payload *models.CustomerPayload) (string, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateInvoice(ctx context.Context, req *InvoiceRequest) (string, error)
	InvoicePDF(ctx context.Context, invoiceID string) ([]byte, error)
}

// InvoiceRequest carries everything needed to create one invoice.
type InvoiceRequest struct {
	CustomerID    string
	LineItems     []models.SelectedItem
	CityCF        string
	CodeCF        string
	VehicleCF     string
	TotalOverride *float64
}

// TokenSource supplies the OAuth token for billing API calls.
type TokenSource interface {
	Token() (string, error)
}

// StaticTokenSource returns a fixed token from the environment. Token refresh
// is handled outside this service.
type StaticTokenSource struct {
	token string
}

func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) Token() (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("no billing access token configured")
	}
	return s.token, nil
}

// ZohoService talks to the Zoho Invoice v3 REST API.
type ZohoService struct {
	baseURL string
	orgID   string
	tokens  TokenSource
	client  *http.Client
}

// NewZohoService reads the API endpoint and organization from the environment.
func NewZohoService(tokens TokenSource) *ZohoService {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://www.zohoapis.in/invoice/v3"
	}

	return &ZohoService{
		baseURL: strings.TrimRight(baseURL, "/"),
		orgID:   os.Getenv("ZOHO_ORG_ID"),
		tokens:  tokens,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (z *ZohoService) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, z.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	token, err := z.tokens.Token()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	req.Header.Set("X-com-zoho-invoice-organizationid", z.orgID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return z.client.Do(req)
}

type zohoContact struct {
	ContactID      string `json:"contact_id"`
	ContactName    string `json:"contact_name"`
	Phone          string `json:"phone"`
	Mobile         string `json:"mobile"`
	ContactPersons []struct {
		Mobile string `json:"mobile"`
		Phone  string `json:"phone"`
	} `json:"contact_persons"`
}

// FindCustomerByPhone scans the contact list for a phone match. Numbers are
// compared digits-only so formatting differences never hide a customer. The
// empty string with a nil error means no match.
func (z *ZohoService) FindCustomerByPhone(ctx context.Context, phone string) (string, error) {
	resp, err := z.do(ctx, http.MethodGet, "/contacts", nil)
	if err != nil {
		return "", fmt.Errorf("fetch contacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch contacts: status %d", resp.StatusCode)
	}

	var payload struct {
		Contacts []zohoContact `json:"contacts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode contacts: %w", err)
	}

	target := digitPattern.ReplaceAllString(phone, "")
	if target == "" {
		return "", nil
	}

	for _, contact := range payload.Contacts {
		for _, candidate := range []string{contact.Phone, contact.Mobile} {
			if phoneMatches(target, candidate) {
				return contact.ContactID, nil
			}
		}
		for _, person := range contact.ContactPersons {
			if phoneMatches(target, person.Mobile) || phoneMatches(target, person.Phone) {
				return contact.ContactID, nil
			}
		}
	}
	return "", nil
}

func phoneMatches(target, candidate string) bool {
	digits := digitPattern.ReplaceAllString(candidate, "")
	if digits == "" {
		return false
	}
	return digits == target || strings.Contains(digits, target) || strings.Contains(target, digits)
}

// CreateCustomer creates a contact and returns its ID.
func (z *ZohoService) CreateCustomer(ctx context.Context, payload *models.CustomerPayload) (string, error) {
	resp, err := z.do(ctx, http.MethodPost, "/contacts", payload)
	if err != nil {
		return "", fmt.Errorf("create contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("create contact: status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Contact struct {
			ContactID string `json:"contact_id"`
		} `json:"contact"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode contact response: %w", err)
	}
	if result.Contact.ContactID == "" {
		return "", fmt.Errorf("create contact: empty contact_id in response")
	}

	log.Printf("✅ Customer created with ID: %s", result.Contact.ContactID)
	return result.Contact.ContactID, nil
}

// ListItems fetches the item catalog.
func (z *ZohoService) ListItems(ctx context.Context) ([]models.Item, error) {
	resp, err := z.do(ctx, http.MethodGet, "/items", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch items: status %d", resp.StatusCode)
	}

	var payload struct {
		Items []models.Item `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return payload.Items, nil
}

// CreateInvoice creates an invoice and returns its ID. Line-item rates are
// sent as stored, which is how reconciliation adjustments reach the provider.
func (z *ZohoService) CreateInvoice(ctx context.Context, req *InvoiceRequest) (string, error) {
	type lineItem struct {
		ItemID   string  `json:"item_id"`
		Quantity int     `json:"quantity"`
		Rate     float64 `json:"rate"`
	}
	type customField struct {
		CustomFieldID string `json:"customfield_id"`
		Value         string `json:"value"`
	}

	lines := make([]lineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lines = append(lines, lineItem{ItemID: item.ItemID, Quantity: item.Quantity, Rate: item.Rate})
	}

	body := map[string]any{
		"customer_id": req.CustomerID,
		"line_items":  lines,
		"custom_fields": []customField{
			{CustomFieldID: cfCityID, Value: req.CityCF},
			{CustomFieldID: cfCodeID, Value: req.CodeCF},
			{CustomFieldID: cfVehicleID, Value: req.VehicleCF},
		},
	}
	if req.TotalOverride != nil {
		body["total"] = *req.TotalOverride
	}

	resp, err := z.do(ctx, http.MethodPost, "/invoices", body)
	if err != nil {
		return "", fmt.Errorf("create invoice: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read invoice response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("create invoice: status %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Invoice struct {
			InvoiceID string `json:"invoice_id"`
		} `json:"invoice"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode invoice response: %w", err)
	}
	if result.Code != 0 || result.Invoice.InvoiceID == "" {
		return "", fmt.Errorf("create invoice: provider error %d: %s", result.Code, result.Message)
	}

	log.Printf("✅ Invoice created with ID: %s", result.Invoice.InvoiceID)
	return result.Invoice.InvoiceID, nil
}

// InvoicePDF downloads the rendered PDF for an invoice.
func (z *ZohoService) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	resp, err := z.do(ctx, http.MethodGet, "/invoices/"+invoiceID+"?accept=pdf", nil)
	if err != nil {
		return nil, fmt.Errorf("download invoice pdf: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download invoice pdf: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// BuildCustomerPayload assembles the create-contact body from collected
// answers, mirroring the account's fixed payment and tax settings.
func BuildCustomerPayload(draft *models.CustomerDraft) *models.CustomerPayload {
	fullName := strings.TrimSpace(strings.Join([]string{draft.Salutation, draft.FirstName, draft.LastName}, " "))

	address := models.Address{
		Country: "India",
		City:    draft.City,
		Address: draft.Address,
		State:   draft.State,
		Zip:     draft.ZipCode,
		Phone:   draft.Phone,
	}

	placeOfContact := draft.PlaceOfContact
	if placeOfContact == "" {
		placeOfContact = "KA"
	}

	return &models.CustomerPayload{
		ContactName:       fullName,
		ContactType:       "customer",
		CurrencyID:        zohoCurrencyID,
		PaymentTerms:      0,
		PaymentTermsLabel: "Paid",
		PaymentTermsID:    zohoPaymentTermsID,
		CreditLimit:       0,
		BillingAddress:    address,
		ShippingAddress:   address,
		ContactPersons: []models.ContactPerson{
			{
				FirstName:        draft.FirstName,
				LastName:         draft.LastName,
				Mobile:           draft.Phone,
				Phone:            draft.Phone,
				Email:            "",
				Salutation:       draft.Salutation,
				IsPrimaryContact: true,
			},
		},
		IsTaxable:       true,
		LanguageCode:    "en",
		GSTTreatment:    "consumer",
		PlaceOfContact:  placeOfContact,
		CustomerSubType: "individual",
	}
}
