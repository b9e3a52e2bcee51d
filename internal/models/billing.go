package models

// Item is one entry of the billing provider's item catalog.
type Item struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// Address is a Zoho billing or shipping address block.
type Address struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

// ContactPerson is the primary contact attached to a new customer.
type ContactPerson struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Mobile           string `json:"mobile"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Salutation       string `json:"salutation"`
	IsPrimaryContact bool   `json:"is_primary_contact"`
}

// CustomerPayload is the create-contact request body for the billing API.
// The constant fields mirror the provider account setup.
type CustomerPayload struct {
	ContactName       string          `json:"contact_name"`
	ContactType       string          `json:"contact_type"`
	CurrencyID        string          `json:"currency_id"`
	PaymentTerms      int             `json:"payment_terms"`
	PaymentTermsLabel string          `json:"payment_terms_label"`
	PaymentTermsID    string          `json:"payment_terms_id"`
	CreditLimit       float64         `json:"credit_limit"`
	BillingAddress    Address         `json:"billing_address"`
	ShippingAddress   Address         `json:"shipping_address"`
	ContactPersons    []ContactPerson `json:"contact_persons"`
	IsTaxable         bool            `json:"is_taxable"`
	LanguageCode      string          `json:"language_code"`
	GSTTreatment      string          `json:"gst_treatment"`
	PlaceOfContact    string          `json:"place_of_contact"`
	CustomerSubType   string          `json:"customer_sub_type"`
}
