package models

// ProcessRequest is the inbound envelope for one conversational turn.
type ProcessRequest struct {
	Text      string   `json:"text"`
	SessionID string   `json:"session_id"`
	Language  string   `json:"language,omitempty"`
	Context   *Session `json:"context,omitempty"`
}

// Reply actions; callers branch their UI on these.
const (
	ActionResetSuccess          = "reset_success"
	ActionAskQuestion           = "ask_question"
	ActionCustomerExists        = "customer_exists"
	ActionCustomerCreated       = "customer_created"
	ActionCustomerCreateFailed  = "customer_creation_failed"
	ActionCustomerCreateError   = "customer_creation_error"
	ActionCustomerLookupError   = "customer_lookup_error"
	ActionInvoiceCreated        = "invoice_created"
	ActionInvoiceCreateFailed   = "invoice_creation_failed"
	ActionInvoiceCreateError    = "invoice_creation_error"
	ActionListItems             = "list_items"
	ActionGeneralResponse       = "general_response"
	ActionFileUploaded          = "file_uploaded"
	ActionError                 = "error"
)

// Reply statuses.
const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Reply is the outbound envelope for one conversational turn. Context echoes
// the session state so a stateless caller can round-trip it; it is omitted on
// terminal replies.
type Reply struct {
	Action    string   `json:"action"`
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Context   *Session `json:"context,omitempty"`
	ContactID string   `json:"contact_id,omitempty"`
	InvoiceID string   `json:"invoice_id,omitempty"`
	PDFURL    string   `json:"pdf_url,omitempty"`
	Data      []Item   `json:"data,omitempty"`
	Text      string   `json:"extracted_text,omitempty"`
}

// Terminal reports whether the reply ends the conversation flow,
// i.e. the session must no longer exist after it is returned.
func (r *Reply) Terminal() bool {
	switch r.Action {
	case ActionCustomerExists, ActionCustomerCreated, ActionCustomerCreateFailed,
		ActionCustomerCreateError, ActionCustomerLookupError,
		ActionInvoiceCreated, ActionInvoiceCreateFailed, ActionInvoiceCreateError,
		ActionResetSuccess:
		return true
	}
	return false
}
