package models

import (
	"time"
)

// Flow identifies which top-level guided dialogue a session is running.
type Flow string

const (
	FlowNone               Flow = ""
	FlowCollectingCustomer Flow = "collecting_customer_info"
	FlowCollectingInvoice  Flow = "collecting_invoice_info"
)

// Field identifies the piece of information the machine is waiting for.
type Field string

const (
	FieldNone Field = ""

	// Customer collection flow
	FieldPhoneLookup    Field = "phone_lookup"
	FieldFirstName      Field = "first_name"
	FieldLastName       Field = "last_name"
	FieldSalutation     Field = "salutation"
	FieldAddress        Field = "address"
	FieldCity           Field = "city"
	FieldState          Field = "state"
	FieldZipCode        Field = "zip_code"
	FieldPhone          Field = "phone"
	FieldPlaceOfContact Field = "place_of_contact"

	// Invoice collection flow
	FieldCustomerPhone Field = "customer_phone"
	FieldItems         Field = "items"
	FieldTotalAmount   Field = "total_amount"
	FieldCityCF        Field = "city_cf"
	FieldCodeCF        Field = "code_cf"
	FieldVehicleCF     Field = "vehicle_cf"
)

// ItemSubStatus tracks position inside the item-collection sub-loop.
type ItemSubStatus string

const (
	SubStatusNone          ItemSubStatus = ""
	SubStatusAskItemNumber ItemSubStatus = "asking_item_number"
	SubStatusAskQuantity   ItemSubStatus = "asking_item_quantity"
	SubStatusAskMoreItems  ItemSubStatus = "ask_more_items"
)

// CustomerDraft accumulates answers for a customer being created.
type CustomerDraft struct {
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Salutation     string `json:"salutation,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	ZipCode        string `json:"zip_code,omitempty"`
	Phone          string `json:"phone,omitempty"`
	PlaceOfContact string `json:"place_of_contact,omitempty"`
}

// SelectedItem is one line item chosen during invoice collection. Rate is a
// snapshot taken at selection time; the reconciliation step may rewrite it.
type SelectedItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

// InvoiceDraft accumulates answers for an invoice being created.
type InvoiceDraft struct {
	CustomerID         string         `json:"customer_id,omitempty"`
	SelectedItems      []SelectedItem `json:"selected_items,omitempty"`
	CityCF             string         `json:"city_cf,omitempty"`
	CodeCF             string         `json:"code_cf,omitempty"`
	VehicleCF          string         `json:"vehicle_cf,omitempty"`
	FinalTotalOverride *float64       `json:"final_total_override,omitempty"`
}

// Session is the per-conversation state, keyed by an opaque session id. The
// whole struct is JSON-serializable so it can round-trip through the response
// envelope's context field or a database context column.
type Session struct {
	ID        string        `json:"session_id"`
	Flow      Flow          `json:"flow,omitempty"`
	NextField Field         `json:"next_field,omitempty"`
	SubStatus ItemSubStatus `json:"invoice_collection_sub_status,omitempty"`

	Customer CustomerDraft `json:"customer_data,omitempty"`
	Invoice  InvoiceDraft  `json:"invoice_data,omitempty"`

	// Item catalog snapshot, fetched once per invoice flow.
	AvailableItems []Item `json:"all_available_items,omitempty"`

	// Item held between the number and quantity questions of the sub-loop.
	CurrentItemID   string  `json:"current_item_id,omitempty"`
	CurrentItemName string  `json:"current_item_name,omitempty"`
	CurrentItemRate float64 `json:"current_item_rate,omitempty"`

	// Set when customer collection runs as a sub-routine of invoice
	// collection; removed once consumed.
	ReturnFlow  Flow   `json:"return_flow,omitempty"`
	ReturnPhone string `json:"return_phone,omitempty"`

	// Most recent contact extraction, consumed by pre-fill and then dropped.
	ExtractedContact *ContactInfo `json:"extracted_contact,omitempty"`

	Language string `json:"language,omitempty"`

	// Amount-reconciliation scratch values. Only live while the machine sits
	// at total_amount; cleared on every exit branch of that step.
	Subtotal     *float64 `json:"calculated_subtotal,omitempty"`
	GSTAmount    *float64 `json:"calculated_gst_amount,omitempty"`
	TotalWithGST *float64 `json:"calculated_total_with_gst,omitempty"`

	CreatedAt  time.Time `json:"created_at,omitempty"`
	LastActive time.Time `json:"last_active,omitempty"`
}

// ClearCalculationScratch removes the reconciliation scratch values so a later
// invoice in a reused session can never observe them.
func (s *Session) ClearCalculationScratch() {
	s.Subtotal = nil
	s.GSTAmount = nil
	s.TotalWithGST = nil
}

// ClearReturnFlow removes the parent-flow markers once they have been
// consumed, preventing a re-trigger on a later step.
func (s *Session) ClearReturnFlow() {
	s.ReturnFlow = FlowNone
	s.ReturnPhone = ""
}

// ClearCurrentItem resets the sub-loop holding slot.
func (s *Session) ClearCurrentItem() {
	s.CurrentItemID = ""
	s.CurrentItemName = ""
	s.CurrentItemRate = 0
}

// Touch updates the activity timestamp used by the session sweeper.
func (s *Session) Touch() {
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.LastActive = now
}
