package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
	"github.com/GaganNGowda/Invoice-Generator/internal/storage"
)

type fakeBilling struct {
	customers  map[string]string
	items      []models.Item
	created    []*models.CustomerPayload
	createID   string
	invoices   []*InvoiceRequest
	invoiceID  string
	lookupErr  error
	createErr  error
	itemsErr   error
	invoiceErr error
}

func (f *fakeBilling) FindCustomerByPhone(_ context.Context, phone string) (string, error) {
	if f.lookupErr != nil {
		return "", f.lookupErr
	}
	return f.customers[phone], nil
}

func (f *fakeBilling) CreateCustomer(_ context.Context, payload *models.CustomerPayload) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, payload)
	return f.createID, nil
}

func (f *fakeBilling) ListItems(_ context.Context) ([]models.Item, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items, nil
}

func (f *fakeBilling) CreateInvoice(_ context.Context, req *InvoiceRequest) (string, error) {
	if f.invoiceErr != nil {
		return "", f.invoiceErr
	}
	f.invoices = append(f.invoices, req)
	return f.invoiceID, nil
}

func (f *fakeBilling) InvoicePDF(_ context.Context, _ string) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

type fakeExtractor struct {
	contact    *models.ContactInfo
	contactErr error
	invoice    *models.InvoiceData
	invoiceErr error
}

func (f *fakeExtractor) ExtractContact(_ context.Context, _ string) (*models.ContactInfo, error) {
	return f.contact, f.contactErr
}

func (f *fakeExtractor) ExtractInvoice(_ context.Context, _ string) (*models.InvoiceData, error) {
	return f.invoice, f.invoiceErr
}

func catalog() []models.Item {
	return []models.Item{
		{ItemID: "it-1", Name: "Steel Rod", Rate: 50},
		{ItemID: "it-2", Name: "Cement Bag", Rate: 100},
	}
}

func newTestConversation(billing BillingClient, extractor Extractor) (*ConversationService, storage.Store) {
	store := storage.NewMemoryStore()
	return NewConversationService(store, billing, extractor, nil), store
}

func say(svc *ConversationService, sessionID, text string) *models.Reply {
	return svc.Handle(context.Background(), &models.ProcessRequest{Text: text, SessionID: sessionID})
}

func TestResetAtAnyField(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{}, items: catalog(), createID: "c-1"}
	svc, store := newTestConversation(billing, nil)

	say(svc, "s1", "create customer")
	say(svc, "s1", "9999999999")
	say(svc, "s1", "Jane")

	reply := say(svc, "s1", "reset_conversation_command")
	assert.Equal(t, models.ActionResetSuccess, reply.Action)
	assert.Nil(t, reply.Context)

	_, err := store.GetSession("s1")
	assert.Error(t, err)
}

func TestCustomerLookupExistingTerminates(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{"9876543210": "c-42"}}
	svc, store := newTestConversation(billing, nil)

	say(svc, "s1", "create customer")
	reply := say(svc, "s1", "+91 98765 43210")

	// Lookup is digits-only; the fake only knows the bare number.
	assert.Equal(t, models.ActionAskQuestion, reply.Action)

	reply = say(svc, "s2", "create customer")
	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	reply = say(svc, "s2", "9876543210")
	assert.Equal(t, models.ActionCustomerExists, reply.Action)
	assert.Equal(t, "c-42", reply.ContactID)
	assert.Nil(t, reply.Context)

	_, err := store.GetSession("s2")
	assert.Error(t, err)
}

func TestCustomerCreateEndToEnd(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{}, createID: "c-77"}
	svc, store := newTestConversation(billing, nil)

	say(svc, "s1", "create customer")
	reply := say(svc, "s1", "9999999999")
	assert.Contains(t, reply.Message, "first name")

	say(svc, "s1", "Jane")
	say(svc, "s1", "Doe")
	say(svc, "s1", "Ms.")
	say(svc, "s1", "1 Main St")
	say(svc, "s1", "Bengaluru")
	say(svc, "s1", "Karnataka")
	reply = say(svc, "s1", "560001")
	assert.Contains(t, reply.Message, "phone")

	say(svc, "s1", "9999999999")
	reply = say(svc, "s1", "KA")

	assert.Equal(t, models.ActionCustomerCreated, reply.Action)
	assert.Equal(t, "c-77", reply.ContactID)

	require.Len(t, billing.created, 1)
	payload := billing.created[0]
	assert.Equal(t, "Ms. Jane Doe", payload.ContactName)
	assert.Equal(t, "560001", payload.BillingAddress.Zip)
	assert.Equal(t, "KA", payload.PlaceOfContact)

	_, err := store.GetSession("s1")
	assert.Error(t, err)
}

func TestInvoiceEndToEndWithCustomerRedirect(t *testing.T) {
	billing := &fakeBilling{
		customers: map[string]string{},
		items:     catalog(),
		createID:  "c-9",
		invoiceID: "inv-1001",
	}
	svc, store := newTestConversation(billing, nil)

	reply := say(svc, "s1", "create invoice")
	assert.Contains(t, reply.Message, "phone")

	// Unknown customer redirects into the customer flow.
	reply = say(svc, "s1", "9999999999")
	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	assert.Contains(t, reply.Message, "first name")
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FlowCollectingCustomer, reply.Context.Flow)

	say(svc, "s1", "Jane")
	say(svc, "s1", "Doe")
	say(svc, "s1", "Ms.")
	say(svc, "s1", "1 Main St")
	say(svc, "s1", "Bengaluru")
	say(svc, "s1", "Karnataka")
	say(svc, "s1", "560001")
	say(svc, "s1", "9999999999")

	// Terminal customer step creates the contact and splices back into the
	// invoice flow at item selection.
	reply = say(svc, "s1", "KA")
	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	assert.Contains(t, reply.Message, "c-9")
	assert.Contains(t, reply.Message, "1. Steel Rod")
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FlowCollectingInvoice, reply.Context.Flow)
	assert.Equal(t, models.SubStatusAskItemNumber, reply.Context.SubStatus)
	assert.Empty(t, reply.Context.ReturnFlow)

	reply = say(svc, "s1", "1")
	assert.Contains(t, reply.Message, "Steel Rod")

	reply = say(svc, "s1", "3")
	assert.Contains(t, reply.Message, "3 x 'Steel Rod'")

	reply = say(svc, "s1", "no")
	// subtotal 150, gst 27, total 177
	assert.Contains(t, reply.Message, "150.00")
	assert.Contains(t, reply.Message, "27.00")
	assert.Contains(t, reply.Message, "177.00")

	reply = say(svc, "s1", "177")
	assert.Contains(t, reply.Message, "city")

	say(svc, "s1", "Bengaluru")
	say(svc, "s1", "CODE-3")
	reply = say(svc, "s1", "KA01AB1234")

	assert.Equal(t, models.ActionInvoiceCreated, reply.Action)
	assert.Equal(t, "inv-1001", reply.InvoiceID)
	assert.Contains(t, reply.PDFURL, "/download-invoice-pdf/inv-1001")

	require.Len(t, billing.invoices, 1)
	invoice := billing.invoices[0]
	assert.Equal(t, "c-9", invoice.CustomerID)
	require.Len(t, invoice.LineItems, 1)
	assert.Equal(t, "it-1", invoice.LineItems[0].ItemID)
	assert.Equal(t, 3, invoice.LineItems[0].Quantity)
	require.NotNil(t, invoice.TotalOverride)
	assert.InDelta(t, 177.0, *invoice.TotalOverride, 0.001)

	_, err := store.GetSession("s1")
	assert.Error(t, err)
}

func TestInvoiceAfterCustomerCreateWithEmptyCatalog(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{}, createID: "c-9"}
	svc, store := newTestConversation(billing, nil)

	say(svc, "s1", "create invoice")
	say(svc, "s1", "9999999999")
	say(svc, "s1", "Jane")
	say(svc, "s1", "Doe")
	say(svc, "s1", "Ms.")
	say(svc, "s1", "1 Main St")
	say(svc, "s1", "Bengaluru")
	say(svc, "s1", "Karnataka")
	say(svc, "s1", "560001")
	say(svc, "s1", "9999999999")

	reply := say(svc, "s1", "KA")

	assert.Equal(t, models.ActionGeneralResponse, reply.Action)
	assert.Equal(t, models.StatusWarning, reply.Status)
	assert.Contains(t, reply.Message, "c-9")
	assert.Contains(t, reply.Message, "no items")
	assert.NotContains(t, reply.Message, "Translation missing")
	assert.Nil(t, reply.Context)

	_, err := store.GetSession("s1")
	assert.Error(t, err)
}

func TestInvoiceForKnownCustomerWithEmptyCatalog(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{"9876543210": "c-1"}}
	svc, store := newTestConversation(billing, nil)

	say(svc, "s1", "create invoice")
	reply := say(svc, "s1", "9876543210")

	assert.Equal(t, models.ActionGeneralResponse, reply.Action)
	assert.Equal(t, models.StatusWarning, reply.Status)
	assert.Contains(t, reply.Message, "c-1")
	assert.NotContains(t, reply.Message, "Translation missing")

	_, err := store.GetSession("s1")
	assert.Error(t, err)
}

func TestInvoiceTotalRescale(t *testing.T) {
	billing := &fakeBilling{
		customers: map[string]string{"9876543210": "c-1"},
		items:     catalog(),
		invoiceID: "inv-2",
	}
	svc, _ := newTestConversation(billing, nil)

	say(svc, "s1", "create invoice")
	say(svc, "s1", "9876543210")
	say(svc, "s1", "1")
	say(svc, "s1", "2") // 2 x 50 = subtotal 100, total 118
	say(svc, "s1", "no")

	reply := say(svc, "s1", "236")
	assert.Equal(t, models.StatusInfo, reply.Status)
	assert.Contains(t, reply.Message, "adjusted")

	say(svc, "s1", "Bengaluru")
	say(svc, "s1", "CODE")
	reply = say(svc, "s1", "")

	require.Len(t, billing.invoices, 1)
	assert.InDelta(t, 100.0, billing.invoices[0].LineItems[0].Rate, 0.01)
	assert.Equal(t, models.ActionInvoiceCreated, reply.Action)
}

func TestItemSubLoopValidation(t *testing.T) {
	billing := &fakeBilling{
		customers: map[string]string{"9876543210": "c-1"},
		items:     catalog(),
	}
	svc, _ := newTestConversation(billing, nil)

	say(svc, "s1", "create invoice")
	say(svc, "s1", "9876543210")

	reply := say(svc, "s1", "not a number")
	assert.Equal(t, models.StatusError, reply.Status)

	reply = say(svc, "s1", "9")
	assert.Equal(t, models.StatusError, reply.Status)

	reply = say(svc, "s1", "2")
	assert.Contains(t, reply.Message, "Cement Bag")

	reply = say(svc, "s1", "0")
	assert.Equal(t, models.StatusError, reply.Status)

	reply = say(svc, "s1", "5")
	assert.Contains(t, reply.Message, "another item")

	reply = say(svc, "s1", "maybe")
	assert.Equal(t, models.StatusError, reply.Status)

	reply = say(svc, "s1", "yes")
	assert.Contains(t, reply.Message, "1. Steel Rod")
}

func TestInvalidPhoneReasksWithoutAdvancing(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{}}
	svc, _ := newTestConversation(billing, nil)

	say(svc, "s1", "create invoice")
	reply := say(svc, "s1", "abc123")

	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	assert.Equal(t, models.StatusError, reply.Status)
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FieldCustomerPhone, reply.Context.NextField)
}

func TestLookupFailureAbortsFlow(t *testing.T) {
	billing := &fakeBilling{lookupErr: errors.New("provider down")}
	svc, store := newTestConversation(billing, nil)

	say(svc, "s1", "create customer")
	reply := say(svc, "s1", "9876543210")

	assert.Equal(t, models.ActionCustomerLookupError, reply.Action)
	assert.Contains(t, reply.Message, "provider down")
	assert.Nil(t, reply.Context)

	_, err := store.GetSession("s1")
	assert.Error(t, err)
}

func TestCustomerCreateFailure(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{}, createID: ""}
	svc, _ := newTestConversation(billing, nil)

	say(svc, "s1", "create customer")
	say(svc, "s1", "9999999999")
	say(svc, "s1", "Jane")
	say(svc, "s1", "Doe")
	say(svc, "s1", "Ms.")
	say(svc, "s1", "1 Main St")
	say(svc, "s1", "Bengaluru")
	say(svc, "s1", "Karnataka")
	say(svc, "s1", "560001")
	say(svc, "s1", "9999999999")
	reply := say(svc, "s1", "KA")

	assert.Equal(t, models.ActionCustomerCreateFailed, reply.Action)
}

func TestSessionCleanupAfterTerminal(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{"9876543210": "c-1"}}
	svc, _ := newTestConversation(billing, nil)

	say(svc, "s1", "create customer")
	reply := say(svc, "s1", "9876543210")
	require.Equal(t, models.ActionCustomerExists, reply.Action)

	// Same id starts over instead of resuming stale state.
	reply = say(svc, "s1", "create customer")
	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FieldPhoneLookup, reply.Context.NextField)
}

func TestPrefillExhaustionEmitsSinglePrompt(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{}}
	extractor := &fakeExtractor{
		contact: &models.ContactInfo{Name: "Jane Doe", PhoneNumber: "9876543210"},
	}
	svc, store := newTestConversation(billing, extractor)

	say(svc, "s1", "create customer")

	reply := svc.ConsumeDocument(context.Background(), "s1", "some scanned letterhead", "", "contact.pdf")

	// phone_lookup, first_name and last_name are all answered silently; the
	// machine stops at the first unanswerable question.
	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	assert.Contains(t, reply.Message, "salutation")
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FieldSalutation, reply.Context.NextField)
	assert.Equal(t, "Jane", reply.Context.Customer.FirstName)
	assert.Equal(t, "Doe", reply.Context.Customer.LastName)
	assert.Equal(t, "9876543210", reply.Context.Customer.Phone)

	session, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, models.FieldSalutation, session.NextField)
}

func TestUploadOutsideCustomerFlowReturnsText(t *testing.T) {
	billing := &fakeBilling{}
	svc, _ := newTestConversation(billing, &fakeExtractor{})

	reply := svc.ConsumeDocument(context.Background(), "s1", "hello world", "", "notes.txt")

	assert.Equal(t, models.ActionFileUploaded, reply.Action)
	assert.Equal(t, "hello world", reply.Text)
	assert.Contains(t, reply.Message, "notes.txt")
}

func TestListItemsIntent(t *testing.T) {
	billing := &fakeBilling{items: catalog()}
	svc, _ := newTestConversation(billing, nil)

	reply := say(svc, "s1", "please list items")

	assert.Equal(t, models.ActionListItems, reply.Action)
	assert.Len(t, reply.Data, 2)
	assert.Contains(t, reply.Message, "Steel Rod")
}

func TestFreeTextWithoutExtractorStartsGuidedInvoice(t *testing.T) {
	billing := &fakeBilling{}
	svc, _ := newTestConversation(billing, nil)

	reply := say(svc, "s1", "bill ramesh for two steel rods")

	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FlowCollectingInvoice, reply.Context.Flow)
	assert.Equal(t, models.FieldCustomerPhone, reply.Context.NextField)
}

func TestFullExtractionCreatesInvoiceDirectly(t *testing.T) {
	billing := &fakeBilling{
		customers: map[string]string{"9876543210": "c-5"},
		items:     catalog(),
		invoiceID: "inv-9",
	}
	extractor := &fakeExtractor{
		invoice: &models.InvoiceData{
			CustomerName:  "Jane Doe",
			CustomerPhone: "9876543210",
			Items: []models.ExtractedItem{
				{ItemName: "steel rod", Quantity: 2},
			},
			CityCF: "Bengaluru",
			CodeCF: "C-2",
		},
	}
	svc, store := newTestConversation(billing, extractor)

	reply := say(svc, "s1", "invoice jane doe 9876543210 for 2 steel rods")

	assert.Equal(t, models.ActionInvoiceCreated, reply.Action)
	assert.Equal(t, "inv-9", reply.InvoiceID)

	require.Len(t, billing.invoices, 1)
	invoice := billing.invoices[0]
	assert.Equal(t, "c-5", invoice.CustomerID)
	require.Len(t, invoice.LineItems, 1)
	assert.Equal(t, "it-1", invoice.LineItems[0].ItemID)
	assert.Equal(t, 2, invoice.LineItems[0].Quantity)
	assert.Equal(t, "Bengaluru", invoice.CityCF)

	_, err := store.GetSession("s1")
	assert.Error(t, err)
}

func TestPartialExtractionSeedsSession(t *testing.T) {
	billing := &fakeBilling{
		customers: map[string]string{},
		items:     catalog(),
		createID:  "c-8",
	}
	extractor := &fakeExtractor{
		invoice: &models.InvoiceData{
			CustomerName:  "Jane Doe",
			CustomerPhone: "9999999999",
			Items: []models.ExtractedItem{
				{ItemName: "cement bag", Quantity: 4},
			},
		},
	}
	svc, _ := newTestConversation(billing, extractor)

	// Customer unknown: machine redirects into customer collection with the
	// extracted name pre-filling both name fields.
	reply := say(svc, "s1", "invoice jane doe 9999999999 for 4 cement bags")

	assert.Equal(t, models.ActionAskQuestion, reply.Action)
	assert.Contains(t, reply.Message, "salutation")
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FlowCollectingCustomer, reply.Context.Flow)
	assert.Equal(t, "Jane", reply.Context.Customer.FirstName)
	assert.Equal(t, models.FlowCollectingInvoice, reply.Context.ReturnFlow)

	// The matched item survives the detour.
	require.Len(t, reply.Context.Invoice.SelectedItems, 1)
	assert.Equal(t, "it-2", reply.Context.Invoice.SelectedItems[0].ItemID)
	assert.Equal(t, 4, reply.Context.Invoice.SelectedItems[0].Quantity)
}

func TestReconciliationScratchCleared(t *testing.T) {
	billing := &fakeBilling{
		customers: map[string]string{"9876543210": "c-1"},
		items:     catalog(),
		invoiceID: "inv-3",
	}
	svc, store := newTestConversation(billing, nil)

	say(svc, "s1", "create invoice")
	say(svc, "s1", "9876543210")
	say(svc, "s1", "1")
	say(svc, "s1", "1")
	say(svc, "s1", "no")

	session, err := store.GetSession("s1")
	require.NoError(t, err)
	require.NotNil(t, session.Subtotal)

	say(svc, "s1", "59")

	session, err = store.GetSession("s1")
	require.NoError(t, err)
	assert.Nil(t, session.Subtotal)
	assert.Nil(t, session.GSTAmount)
	assert.Nil(t, session.TotalWithGST)
}

func TestInvalidTotalKeepsAsking(t *testing.T) {
	billing := &fakeBilling{
		customers: map[string]string{"9876543210": "c-1"},
		items:     catalog(),
	}
	svc, _ := newTestConversation(billing, nil)

	say(svc, "s1", "create invoice")
	say(svc, "s1", "9876543210")
	say(svc, "s1", "1")
	say(svc, "s1", "1")
	say(svc, "s1", "no")

	reply := say(svc, "s1", "not a number")
	assert.Equal(t, models.StatusError, reply.Status)
	require.NotNil(t, reply.Context)
	assert.Equal(t, models.FieldTotalAmount, reply.Context.NextField)

	reply = say(svc, "s1", "-5")
	assert.Equal(t, models.StatusError, reply.Status)
	assert.Equal(t, models.FieldTotalAmount, reply.Context.NextField)
}

func TestContextRoundTripWithoutStore(t *testing.T) {
	billing := &fakeBilling{customers: map[string]string{"9876543210": "c-1"}, items: catalog()}
	svc, store := newTestConversation(billing, nil)

	reply := say(svc, "s1", "create invoice")
	echo := reply.Context
	require.NotNil(t, echo)

	// Drop the server-side copy; the echoed context alone must resume the flow.
	require.NoError(t, store.DeleteSession("s1"))

	reply = svc.Handle(context.Background(), &models.ProcessRequest{
		Text:      "9876543210",
		SessionID: "s1",
		Context:   echo,
	})
	assert.Contains(t, reply.Message, "1. Steel Rod")
}
