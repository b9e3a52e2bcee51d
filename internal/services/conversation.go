package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/GaganNGowda/Invoice-Generator/internal/i18n"
	"github.com/GaganNGowda/Invoice-Generator/internal/models"
	"github.com/GaganNGowda/Invoice-Generator/internal/storage"
)

// ResetCommand wipes the session regardless of flow position. Checked before
// any other dispatch.
const ResetCommand = "reset_conversation_command"

// ConversationService drives the multi-turn dialogue that collects customer
// and invoice details one utterance at a time. Each Handle call runs exactly
// one step of the machine and persists (or deletes) the session before
// returning.
type ConversationService struct {
	store     storage.Store
	billing   BillingClient
	extractor Extractor
	pincodes  *PincodeMatcher
	baseURL   string
}

// NewConversationService wires the machine to its collaborators. extractor
// and pincodes may be nil; the machine then degrades to guided collection
// without pre-fill shortcuts.
func NewConversationService(store storage.Store, billing BillingClient, extractor Extractor, pincodes *PincodeMatcher) *ConversationService {
	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return &ConversationService{
		store:     store,
		billing:   billing,
		extractor: extractor,
		pincodes:  pincodes,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Handle runs one conversational step: load session, dispatch on flow, save
// or delete session, reply.
func (c *ConversationService) Handle(ctx context.Context, req *models.ProcessRequest) *models.Reply {
	text := strings.TrimSpace(req.Text)
	session := c.loadSession(req)
	lang := session.Language

	if strings.ToLower(text) == ResetCommand {
		if err := c.store.DeleteSession(session.ID); err != nil {
			log.Printf("⚠️ Failed to delete session %s on reset: %v", session.ID, err)
		}
		return &models.Reply{
			Action:  models.ActionResetSuccess,
			Status:  models.StatusInfo,
			Message: i18n.T("reset_success", lang, nil),
		}
	}

	var reply *models.Reply
	switch session.Flow {
	case models.FlowCollectingCustomer:
		reply = c.customerStep(ctx, session, text)
	case models.FlowCollectingInvoice:
		reply = c.invoiceStep(ctx, session, text)
	default:
		reply = c.idleStep(ctx, session, text)
	}

	c.finish(session, reply)
	return reply
}

// ConsumeDocument feeds document text into an active customer-collection
// session: the contact extraction result becomes pre-fill material and the
// machine advances as far as it can. Outside a customer flow the text is just
// handed back to the caller.
func (c *ConversationService) ConsumeDocument(ctx context.Context, sessionID, text, language, fileName string) *models.Reply {
	session, err := c.store.GetSession(sessionID)
	if err != nil || session.Flow != models.FlowCollectingCustomer {
		return &models.Reply{
			Action:  models.ActionFileUploaded,
			Status:  models.StatusSuccess,
			Message: i18n.T("file_uploaded_success", language, map[string]string{"file_name": fileName}),
			Text:    text,
		}
	}
	if language != "" {
		session.Language = language
	}

	if c.extractor != nil {
		contact, err := c.extractor.ExtractContact(ctx, text)
		if err != nil {
			log.Printf("⚠️ Contact extraction failed for session %s: %v", sessionID, err)
		} else if !contact.Empty() {
			session.ExtractedContact = contact
		}
	}

	reply := c.advanceCustomer(ctx, session)
	c.finish(session, reply)
	return reply
}

func (c *ConversationService) loadSession(req *models.ProcessRequest) *models.Session {
	session, err := c.store.GetSession(req.SessionID)
	if err != nil {
		if req.Context != nil {
			session = req.Context
		} else {
			session = &models.Session{}
		}
	}
	session.ID = req.SessionID
	if req.Language != "" {
		session.Language = req.Language
	}
	return session
}

// finish persists the session behind a non-terminal in-flow reply and deletes
// it otherwise. Terminal replies never echo context, so a later call with the
// same id starts fresh.
func (c *ConversationService) finish(session *models.Session, reply *models.Reply) {
	if reply.Terminal() || session.Flow == models.FlowNone {
		if err := c.store.DeleteSession(session.ID); err != nil {
			log.Printf("⚠️ Failed to delete session %s: %v", session.ID, err)
		}
		return
	}

	session.Touch()
	if err := c.store.PutSession(session); err != nil {
		log.Printf("⚠️ Failed to persist session %s: %v", session.ID, err)
	}
	reply.Context = session
}

// ---------------------------------------------------------------------------
// Customer collection flow
// ---------------------------------------------------------------------------

// customerStep consumes one user answer for the current customer field and
// then lets pre-fill run the machine forward as far as the extracted record
// allows.
func (c *ConversationService) customerStep(ctx context.Context, session *models.Session, text string) *models.Reply {
	if reply := c.applyCustomerAnswer(ctx, session, text); reply != nil {
		return reply
	}
	return c.advanceCustomer(ctx, session)
}

// advanceCustomer applies pre-fill to the upcoming field, advancing while the
// extracted record keeps answering questions, then prompts the user for the
// first field it cannot answer. The loop is capped at the flow's field count
// so malformed extraction data can never spin it.
func (c *ConversationService) advanceCustomer(ctx context.Context, session *models.Session) *models.Reply {
	for i := 0; i <= CustomerFieldCount(); i++ {
		contact := session.ExtractedContact
		if contact == nil {
			break
		}
		if PrefillExhausted(session.NextField, contact) {
			session.ExtractedContact = nil
			break
		}
		value, ok := TryPrefill(session.NextField, contact)
		if !ok {
			break
		}
		if reply := c.applyCustomerAnswer(ctx, session, value); reply != nil {
			return reply
		}
	}
	return c.promptCustomer(session)
}

// applyCustomerAnswer processes answer for session.NextField. A nil return
// means the answer was accepted and NextField advanced; the caller decides
// what to ask next. Non-nil returns short-circuit: validation re-asks,
// lookup/creation terminals, and the splice back into the invoice flow.
func (c *ConversationService) applyCustomerAnswer(ctx context.Context, session *models.Session, answer string) *models.Reply {
	lang := session.Language
	draft := &session.Customer

	switch session.NextField {
	case models.FieldPhoneLookup:
		phone, ok := NormalizePhone(answer)
		if !ok {
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusError,
				Message: i18n.T("invalid_phone_format", lang, nil),
			}
		}

		contactID, err := c.billing.FindCustomerByPhone(ctx, phone)
		if err != nil {
			session.Flow = models.FlowNone
			return &models.Reply{
				Action:  models.ActionCustomerLookupError,
				Status:  models.StatusError,
				Message: i18n.T("customer_lookup_error", lang, map[string]string{"error_message": err.Error()}),
			}
		}
		if contactID != "" {
			if session.ReturnFlow == models.FlowCollectingInvoice {
				return c.enterItemSelection(ctx, session, contactID, "customer_found_for_invoice")
			}
			session.Flow = models.FlowNone
			return &models.Reply{
				Action:    models.ActionCustomerExists,
				Status:    models.StatusInfo,
				Message:   i18n.T("customer_exists", lang, map[string]string{"contact_id": contactID}),
				ContactID: contactID,
			}
		}

		draft.Phone = phone
		session.NextField = models.FieldFirstName
		return nil

	case models.FieldZipCode:
		zip := strings.TrimSpace(answer)
		if !ValidZip(zip) {
			matched, ok := "", false
			if c.pincodes != nil {
				matched, ok = c.pincodes.Nearest(zip)
			}
			if !ok {
				return &models.Reply{
					Action:  models.ActionAskQuestion,
					Status:  models.StatusError,
					Message: i18n.T("invalid_zip_code", lang, nil),
				}
			}
			draft.ZipCode = matched
			session.NextField = models.FieldPhone
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusWarning,
				Message: i18n.T("zip_code_matched", lang, map[string]string{"pincode": matched}),
			}
		}
		draft.ZipCode = zip
		session.NextField = models.FieldPhone
		return nil

	case models.FieldPhone:
		phone, ok := NormalizePhone(answer)
		if !ok {
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusError,
				Message: i18n.T("invalid_phone_number", lang, nil),
			}
		}
		draft.Phone = phone
		session.NextField = models.FieldPlaceOfContact
		return nil

	case models.FieldPlaceOfContact:
		draft.PlaceOfContact = strings.TrimSpace(answer)
		if draft.PlaceOfContact == "" {
			draft.PlaceOfContact = "KA"
		}
		return c.resolveOrCreateCustomer(ctx, session)

	default:
		spec := CustomerFieldSpecFor(session.NextField)
		if spec == nil {
			return &models.Reply{
				Action:  models.ActionGeneralResponse,
				Status:  models.StatusError,
				Message: i18n.T("collecting_customer_details_fallback", lang, map[string]string{"next_field": string(session.NextField)}),
			}
		}
		spec.Set(draft, strings.TrimSpace(answer))
		session.NextField = NextCustomerField(session.NextField)
		return nil
	}
}

// promptCustomer asks the question for the field the machine stopped at.
// first_name only ever follows a failed phone lookup, so it carries the
// "not found, let's create one" framing.
func (c *ConversationService) promptCustomer(session *models.Session) *models.Reply {
	lang := session.Language

	if session.NextField == models.FieldPhoneLookup {
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("create_customer_prompt", lang, nil),
		}
	}

	if session.NextField == models.FieldFirstName {
		key := "customer_not_found_create"
		if session.ReturnFlow == models.FlowCollectingInvoice {
			key = "customer_not_found_create_invoice"
		}
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T(key, lang, nil),
		}
	}

	spec := CustomerFieldSpecFor(session.NextField)
	if spec == nil {
		return &models.Reply{
			Action:  models.ActionGeneralResponse,
			Status:  models.StatusError,
			Message: i18n.T("collecting_customer_details_fallback", lang, map[string]string{"next_field": string(session.NextField)}),
		}
	}
	return &models.Reply{
		Action:  models.ActionAskQuestion,
		Status:  models.StatusInfo,
		Message: i18n.T(spec.PromptKey, lang, nil),
	}
}

// resolveOrCreateCustomer is the customer flow's terminal step: re-check the
// phone against the provider (the customer may have been created meanwhile),
// create the contact if still absent, then either splice back into the
// invoice flow or end the conversation.
func (c *ConversationService) resolveOrCreateCustomer(ctx context.Context, session *models.Session) *models.Reply {
	lang := session.Language
	draft := &session.Customer

	existingID, err := c.billing.FindCustomerByPhone(ctx, draft.Phone)
	if err != nil {
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:  models.ActionCustomerCreateError,
			Status:  models.StatusError,
			Message: i18n.T("customer_creation_error", lang, map[string]string{"error_message": err.Error()}),
		}
	}
	if existingID != "" {
		if session.ReturnFlow == models.FlowCollectingInvoice {
			return c.enterItemSelection(ctx, session, existingID, "customer_found_for_invoice")
		}
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:    models.ActionCustomerExists,
			Status:    models.StatusInfo,
			Message:   i18n.T("customer_exists", lang, map[string]string{"contact_id": existingID}),
			ContactID: existingID,
		}
	}

	contactID, err := c.billing.CreateCustomer(ctx, BuildCustomerPayload(draft))
	if err != nil {
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:  models.ActionCustomerCreateError,
			Status:  models.StatusError,
			Message: i18n.T("customer_creation_error", lang, map[string]string{"error_message": err.Error()}),
		}
	}
	if contactID == "" {
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:  models.ActionCustomerCreateFailed,
			Status:  models.StatusError,
			Message: i18n.T("customer_creation_failed", lang, nil),
		}
	}

	if session.ReturnFlow == models.FlowCollectingInvoice {
		return c.enterItemSelection(ctx, session, contactID, "customer_created_for_invoice")
	}
	session.Flow = models.FlowNone
	return &models.Reply{
		Action:    models.ActionCustomerCreated,
		Status:    models.StatusSuccess,
		Message:   i18n.T("customer_created", lang, map[string]string{"contact_id": contactID}),
		ContactID: contactID,
	}
}

// enterItemSelection moves the session into the invoice flow's item sub-loop
// with customerID resolved, fetching the item catalog snapshot for menu
// selection. messageKey distinguishes the found/created framings.
func (c *ConversationService) enterItemSelection(ctx context.Context, session *models.Session, customerID, messageKey string) *models.Reply {
	lang := session.Language

	session.Flow = models.FlowCollectingInvoice
	session.NextField = models.FieldItems
	session.SubStatus = models.SubStatusAskItemNumber
	session.Invoice.CustomerID = customerID
	session.Customer = models.CustomerDraft{}
	session.ExtractedContact = nil
	session.ClearReturnFlow()

	items, err := c.billing.ListItems(ctx)
	if err != nil {
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:  models.ActionCustomerLookupError,
			Status:  models.StatusError,
			Message: i18n.T("customer_lookup_error", lang, map[string]string{"error_message": err.Error()}),
		}
	}
	session.AvailableItems = items

	// An empty catalog is a dead end: nothing can be selected, so the flow
	// ends here instead of looping on an unanswerable question.
	if len(items) == 0 {
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:    models.ActionGeneralResponse,
			Status:    models.StatusWarning,
			Message:   i18n.T(messageKey+"_no_items", lang, map[string]string{"contact_id": customerID}),
			ContactID: customerID,
		}
	}
	return &models.Reply{
		Action:  models.ActionAskQuestion,
		Status:  models.StatusInfo,
		Message: i18n.T(messageKey, lang, map[string]string{"contact_id": customerID, "items_display_message": itemsMenu(items)}),
		ContactID: customerID,
	}
}

// ---------------------------------------------------------------------------
// Invoice collection flow
// ---------------------------------------------------------------------------

func (c *ConversationService) invoiceStep(ctx context.Context, session *models.Session, text string) *models.Reply {
	lang := session.Language

	switch session.NextField {
	case models.FieldCustomerPhone:
		return c.invoiceCustomerPhone(ctx, session, text)

	case models.FieldItems:
		return c.itemSubLoop(ctx, session, text)

	case models.FieldTotalAmount:
		return c.reconcileTotal(session, text)

	case models.FieldCityCF:
		session.Invoice.CityCF = strings.TrimSpace(text)
		session.NextField = models.FieldCodeCF
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("ask_code_cf", lang, nil),
		}

	case models.FieldCodeCF:
		session.Invoice.CodeCF = strings.TrimSpace(text)
		session.NextField = models.FieldVehicleCF
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("ask_vehicle_cf", lang, nil),
		}

	case models.FieldVehicleCF:
		session.Invoice.VehicleCF = strings.TrimSpace(text)
		return c.createInvoice(ctx, session)

	default:
		return &models.Reply{
			Action:  models.ActionGeneralResponse,
			Status:  models.StatusError,
			Message: i18n.T("collecting_invoice_details_fallback", lang, map[string]string{"next_field": string(session.NextField)}),
		}
	}
}

func (c *ConversationService) invoiceCustomerPhone(ctx context.Context, session *models.Session, text string) *models.Reply {
	lang := session.Language

	phone, ok := NormalizePhone(text)
	if !ok {
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusError,
			Message: i18n.T("invalid_phone_format", lang, nil),
		}
	}

	contactID, err := c.billing.FindCustomerByPhone(ctx, phone)
	if err != nil {
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:  models.ActionCustomerLookupError,
			Status:  models.StatusError,
			Message: i18n.T("customer_lookup_error", lang, map[string]string{"error_message": err.Error()}),
		}
	}
	if contactID != "" {
		return c.enterItemSelection(ctx, session, contactID, "customer_found_for_invoice")
	}

	// No such customer: collect one as a sub-routine and come back for items.
	session.Flow = models.FlowCollectingCustomer
	session.NextField = models.FieldFirstName
	session.Customer = models.CustomerDraft{Phone: phone}
	session.ReturnFlow = models.FlowCollectingInvoice
	session.ReturnPhone = phone
	return c.advanceCustomer(ctx, session)
}

func (c *ConversationService) itemSubLoop(ctx context.Context, session *models.Session, text string) *models.Reply {
	lang := session.Language
	answer := strings.TrimSpace(text)

	switch session.SubStatus {
	case models.SubStatusAskItemNumber:
		index, err := strconv.Atoi(answer)
		if err != nil {
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusError,
				Message: i18n.T("enter_valid_number", lang, nil),
			}
		}
		if index < 1 || index > len(session.AvailableItems) {
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusError,
				Message: i18n.T("invalid_item_number", lang, nil),
			}
		}

		item := session.AvailableItems[index-1]
		session.CurrentItemID = item.ItemID
		session.CurrentItemName = item.Name
		session.CurrentItemRate = item.Rate
		session.SubStatus = models.SubStatusAskQuantity
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("ask_quantity", lang, map[string]string{"item_name": item.Name}),
		}

	case models.SubStatusAskQuantity:
		quantity, err := strconv.Atoi(answer)
		if err != nil || quantity <= 0 {
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusError,
				Message: i18n.T("invalid_quantity", lang, nil),
			}
		}

		itemName := session.CurrentItemName
		session.Invoice.SelectedItems = append(session.Invoice.SelectedItems, models.SelectedItem{
			ItemID:   session.CurrentItemID,
			Name:     itemName,
			Quantity: quantity,
			Rate:     session.CurrentItemRate,
		})
		session.ClearCurrentItem()
		session.SubStatus = models.SubStatusAskMoreItems
		return &models.Reply{
			Action: models.ActionAskQuestion,
			Status: models.StatusInfo,
			Message: i18n.T("item_added_ask_more", lang, map[string]string{
				"quantity":  strconv.Itoa(quantity),
				"item_name": itemName,
			}),
		}

	case models.SubStatusAskMoreItems:
		switch strings.ToLower(answer) {
		case "yes", "y":
			session.SubStatus = models.SubStatusAskItemNumber
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusInfo,
				Message: i18n.T("ask_more_items_prompt", lang, map[string]string{"items_display_message": itemsMenu(session.AvailableItems)}),
			}
		case "no", "n":
			session.SubStatus = models.SubStatusNone
			session.NextField = models.FieldTotalAmount

			totals := ComputeTotals(session.Invoice.SelectedItems)
			session.Subtotal = &totals.Subtotal
			session.GSTAmount = &totals.GSTAmount
			session.TotalWithGST = &totals.TotalWithGST
			return &models.Reply{
				Action: models.ActionAskQuestion,
				Status: models.StatusInfo,
				Message: i18n.T("ask_total_amount", lang, map[string]string{
					"calculated_subtotal":       formatAmount(totals.Subtotal),
					"gst_rate_percent":          gstRatePercent(),
					"calculated_gst_amount":     formatAmount(totals.GSTAmount),
					"calculated_total_with_gst": formatAmount(totals.TotalWithGST),
				}),
			}
		default:
			return &models.Reply{
				Action:  models.ActionAskQuestion,
				Status:  models.StatusError,
				Message: i18n.T("yes_no_prompt", lang, nil),
			}
		}

	default:
		return &models.Reply{
			Action:  models.ActionGeneralResponse,
			Status:  models.StatusError,
			Message: i18n.T("item_collection_error", lang, nil),
		}
	}
}

// reconcileTotal runs the amount-reconciliation step against the user's
// expected total, then moves on to the custom fields. All three branches
// clear the calculation scratch.
func (c *ConversationService) reconcileTotal(session *models.Session, text string) *models.Reply {
	lang := session.Language

	provided, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || provided <= 0 {
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusError,
			Message: i18n.T("invalid_total_amount", lang, nil),
		}
	}

	outcome := Reconcile(session.Invoice.SelectedItems, provided)
	session.Invoice.FinalTotalOverride = &provided
	session.ClearCalculationScratch()
	session.NextField = models.FieldCityCF

	params := map[string]string{"provided_total": formatAmount(provided)}
	switch outcome {
	case ReconcileMatch:
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("total_amount_matches_proceed_custom_fields", lang, nil),
		}
	case ReconcileZeroSubtotal:
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusWarning,
			Message: i18n.T("calculated_subtotal_zero_adjust_total", lang, params),
		}
	default:
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("item_prices_adjusted_proceed_custom_fields", lang, params),
		}
	}
}

func (c *ConversationService) createInvoice(ctx context.Context, session *models.Session) *models.Reply {
	lang := session.Language
	draft := &session.Invoice

	invoiceID, err := c.billing.CreateInvoice(ctx, &InvoiceRequest{
		CustomerID:    draft.CustomerID,
		LineItems:     draft.SelectedItems,
		CityCF:        draft.CityCF,
		CodeCF:        draft.CodeCF,
		VehicleCF:     draft.VehicleCF,
		TotalOverride: draft.FinalTotalOverride,
	})
	session.Flow = models.FlowNone
	if err != nil {
		return &models.Reply{
			Action:  models.ActionInvoiceCreateError,
			Status:  models.StatusError,
			Message: i18n.T("invoice_creation_error", lang, map[string]string{"error_message": err.Error()}),
		}
	}
	if invoiceID == "" {
		return &models.Reply{
			Action:  models.ActionInvoiceCreateFailed,
			Status:  models.StatusError,
			Message: i18n.T("invoice_creation_failed", lang, nil),
		}
	}

	return &models.Reply{
		Action:    models.ActionInvoiceCreated,
		Status:    models.StatusSuccess,
		Message:   i18n.T("invoice_created", lang, map[string]string{"invoice_id": invoiceID}),
		InvoiceID: invoiceID,
		PDFURL:    fmt.Sprintf("%s/download-invoice-pdf/%s", c.baseURL, invoiceID),
	}
}

// ---------------------------------------------------------------------------
// Idle dispatch
// ---------------------------------------------------------------------------

func (c *ConversationService) idleStep(ctx context.Context, session *models.Session, text string) *models.Reply {
	lang := session.Language
	lower := strings.ToLower(text)

	if text == "" {
		return &models.Reply{
			Action:  models.ActionError,
			Status:  models.StatusError,
			Message: i18n.T("no_text_provided", lang, nil),
		}
	}

	if strings.Contains(lower, "show items") || strings.Contains(lower, "list items") || strings.Contains(lower, "what items") {
		return c.listItems(ctx, lang)
	}

	if strings.Contains(lower, "create customer") {
		*session = models.Session{
			ID:        session.ID,
			Flow:      models.FlowCollectingCustomer,
			NextField: models.FieldPhoneLookup,
			Language:  lang,
		}
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("create_customer_prompt", lang, nil),
		}
	}

	if strings.Contains(lower, "create invoice") {
		*session = models.Session{
			ID:        session.ID,
			Flow:      models.FlowCollectingInvoice,
			NextField: models.FieldCustomerPhone,
			Language:  lang,
		}
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("create_invoice_prompt", lang, nil),
		}
	}

	return c.extractAndRun(ctx, session, text)
}

func (c *ConversationService) listItems(ctx context.Context, lang string) *models.Reply {
	items, err := c.billing.ListItems(ctx)
	if err != nil {
		return &models.Reply{
			Action:  models.ActionListItems,
			Status:  models.StatusError,
			Message: i18n.T("failed_to_fetch_items", lang, map[string]string{"error_message": err.Error()}),
		}
	}
	if len(items) == 0 {
		return &models.Reply{
			Action:  models.ActionListItems,
			Status:  models.StatusInfo,
			Message: i18n.T("no_items_found", lang, nil),
		}
	}

	return &models.Reply{
		Action:  models.ActionListItems,
		Status:  models.StatusSuccess,
		Message: i18n.T("list_items_success", lang, map[string]string{"items_display": itemsList(items)}),
		Data:    items,
	}
}

// extractAndRun is the opportunistic path for free-form text: try to pull a
// whole invoice out of the utterance. A complete extraction (customer
// resolved, at least one catalog item matched) creates the invoice in one
// shot; a partial one seeds a session and the guided flow takes over; no
// extraction at all starts the invoice flow from the top.
func (c *ConversationService) extractAndRun(ctx context.Context, session *models.Session, text string) *models.Reply {
	lang := session.Language

	var record *models.InvoiceData
	if c.extractor != nil {
		extracted, err := c.extractor.ExtractInvoice(ctx, text)
		if err != nil {
			log.Printf("⚠️ Invoice extraction failed: %v", err)
		} else {
			record = extracted
		}
	}

	if record == nil || (record.CustomerPhone == "" && record.CustomerName == "" && len(record.Items) == 0) {
		session.Flow = models.FlowCollectingInvoice
		session.NextField = models.FieldCustomerPhone
		session.Invoice = models.InvoiceDraft{}
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("invoice_step_by_step", lang, nil),
		}
	}

	// Seed a fresh invoice session from the partial record.
	session.Flow = models.FlowCollectingInvoice
	session.NextField = models.FieldCustomerPhone
	session.Invoice = models.InvoiceDraft{
		CityCF:    record.CityCF,
		CodeCF:    record.CodeCF,
		VehicleCF: record.VehicleCF,
	}
	if record.CustomerName != "" || record.CustomerPhone != "" {
		session.ExtractedContact = &models.ContactInfo{
			Name:        record.CustomerName,
			PhoneNumber: record.CustomerPhone,
		}
	}

	var matched []models.SelectedItem
	if len(record.Items) > 0 {
		catalog, err := c.billing.ListItems(ctx)
		if err != nil {
			log.Printf("⚠️ Item catalog fetch failed during extraction: %v", err)
		} else {
			matched = matchExtractedItems(record.Items, catalog)
		}
	}
	session.Invoice.SelectedItems = matched

	phone, hasPhone := NormalizePhone(record.CustomerPhone)
	if !hasPhone {
		return &models.Reply{
			Action:  models.ActionAskQuestion,
			Status:  models.StatusInfo,
			Message: i18n.T("invoice_step_by_step", lang, nil),
		}
	}

	contactID, err := c.billing.FindCustomerByPhone(ctx, phone)
	if err != nil {
		session.Flow = models.FlowNone
		return &models.Reply{
			Action:  models.ActionCustomerLookupError,
			Status:  models.StatusError,
			Message: i18n.T("customer_lookup_error", lang, map[string]string{"error_message": err.Error()}),
		}
	}

	if contactID != "" && len(matched) > 0 {
		// Everything needed is on hand; skip the dialogue entirely.
		session.Invoice.CustomerID = contactID
		return c.createInvoice(ctx, session)
	}

	if contactID != "" {
		return c.enterItemSelection(ctx, session, contactID, "customer_found_for_invoice")
	}

	// Unknown customer: collect one, keeping any matched items for later.
	session.Flow = models.FlowCollectingCustomer
	session.NextField = models.FieldFirstName
	session.Customer = models.CustomerDraft{Phone: phone}
	session.ReturnFlow = models.FlowCollectingInvoice
	session.ReturnPhone = phone
	return c.advanceCustomer(ctx, session)
}

// matchExtractedItems resolves extracted item names against the catalog,
// case-insensitively, dropping anything without a match. Zero or negative
// quantities default to one.
func matchExtractedItems(extracted []models.ExtractedItem, catalog []models.Item) []models.SelectedItem {
	var matched []models.SelectedItem
	for _, want := range extracted {
		name := strings.ToLower(strings.TrimSpace(want.ItemName))
		if name == "" {
			continue
		}
		for _, item := range catalog {
			have := strings.ToLower(item.Name)
			if have == name || strings.Contains(have, name) {
				quantity := want.Quantity
				if quantity <= 0 {
					quantity = 1
				}
				matched = append(matched, models.SelectedItem{
					ItemID:   item.ItemID,
					Name:     item.Name,
					Quantity: quantity,
					Rate:     item.Rate,
				})
				break
			}
		}
	}
	return matched
}

// ---------------------------------------------------------------------------
// Formatting helpers
// ---------------------------------------------------------------------------

func itemsMenu(items []models.Item) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s (ID: %s, Rate: %s)", i+1, item.Name, item.ItemID, formatRate(item.Rate)))
	}
	return strings.Join(lines, "\n")
}

func itemsList(items []models.Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s (ID: %s, Rate: %s)", item.Name, item.ItemID, formatRate(item.Rate)))
	}
	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func gstRatePercent() string {
	rate, _ := strconv.ParseFloat(GSTRate, 64)
	return strconv.FormatFloat(rate*100, 'f', -1, 64)
}
