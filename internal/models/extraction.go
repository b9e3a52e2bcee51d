package models

// ContactInfo is the structured record the LLM extracts from free-form or
// OCR text when looking for a person or business to bill.
type ContactInfo struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Empty reports whether the extraction produced nothing usable.
func (c *ContactInfo) Empty() bool {
	if c == nil {
		return true
	}
	return c.Name == "" && c.PhoneNumber == "" && c.Address == "" &&
		c.City == "" && c.State == "" && c.Pincode == ""
}

// ExtractedItem is one item mention pulled out of free-form text.
type ExtractedItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// InvoiceData is the full-invoice record the LLM extracts from a single
// utterance or document, with every field optional.
type InvoiceData struct {
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Items         []ExtractedItem `json:"items,omitempty"`
	CityCF        string          `json:"city_cf,omitempty"`
	CodeCF        string          `json:"code_cf,omitempty"`
	VehicleCF     string          `json:"vehicle_cf,omitempty"`
}
