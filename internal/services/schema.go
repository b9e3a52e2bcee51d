package services

import (
	"regexp"
	"strings"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// phonePattern accepts digits optionally mixed with '+', spaces and dashes.
// Normalization strips everything but the digits.
var (
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-]+$`)
	zipPattern   = regexp.MustCompile(`^\d{6}$`)
	digitPattern = regexp.MustCompile(`\D`)
)

// NormalizePhone strips formatting from a phone answer. ok is false when the
// input contains anything besides digits, '+', spaces and dashes, or when no
// digits remain after stripping.
func NormalizePhone(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !phonePattern.MatchString(trimmed) {
		return "", false
	}
	digits := digitPattern.ReplaceAllString(trimmed, "")
	if digits == "" {
		return "", false
	}
	return digits, true
}

// ValidZip reports whether raw is an exact 6-digit pincode.
func ValidZip(raw string) bool {
	return zipPattern.MatchString(strings.TrimSpace(raw))
}

// CustomerFieldSpec describes one question of the customer collection flow:
// the state name, the i18n prompt key, and accessors into the draft.
type CustomerFieldSpec struct {
	Field     models.Field
	PromptKey string
	Get       func(*models.CustomerDraft) string
	Set       func(*models.CustomerDraft, string)
}

// customerFields lists the questions in the order they are asked. phone_lookup
// precedes this sequence and is handled separately since it is a lookup, not a
// draft field.
var customerFields = []CustomerFieldSpec{
	{
		Field:     models.FieldFirstName,
		PromptKey: "ask_first_name",
		Get:       func(d *models.CustomerDraft) string { return d.FirstName },
		Set:       func(d *models.CustomerDraft, v string) { d.FirstName = v },
	},
	{
		Field:     models.FieldLastName,
		PromptKey: "ask_last_name",
		Get:       func(d *models.CustomerDraft) string { return d.LastName },
		Set:       func(d *models.CustomerDraft, v string) { d.LastName = v },
	},
	{
		Field:     models.FieldSalutation,
		PromptKey: "ask_salutation",
		Get:       func(d *models.CustomerDraft) string { return d.Salutation },
		Set:       func(d *models.CustomerDraft, v string) { d.Salutation = v },
	},
	{
		Field:     models.FieldAddress,
		PromptKey: "ask_address",
		Get:       func(d *models.CustomerDraft) string { return d.Address },
		Set:       func(d *models.CustomerDraft, v string) { d.Address = v },
	},
	{
		Field:     models.FieldCity,
		PromptKey: "ask_city",
		Get:       func(d *models.CustomerDraft) string { return d.City },
		Set:       func(d *models.CustomerDraft, v string) { d.City = v },
	},
	{
		Field:     models.FieldState,
		PromptKey: "ask_state",
		Get:       func(d *models.CustomerDraft) string { return d.State },
		Set:       func(d *models.CustomerDraft, v string) { d.State = v },
	},
	{
		Field:     models.FieldZipCode,
		PromptKey: "ask_zip_code",
		Get:       func(d *models.CustomerDraft) string { return d.ZipCode },
		Set:       func(d *models.CustomerDraft, v string) { d.ZipCode = v },
	},
	{
		Field:     models.FieldPhone,
		PromptKey: "ask_phone",
		Get:       func(d *models.CustomerDraft) string { return d.Phone },
		Set:       func(d *models.CustomerDraft, v string) { d.Phone = v },
	},
	{
		Field:     models.FieldPlaceOfContact,
		PromptKey: "ask_place_of_contact",
		Get:       func(d *models.CustomerDraft) string { return d.PlaceOfContact },
		Set:       func(d *models.CustomerDraft, v string) { d.PlaceOfContact = v },
	},
}

// CustomerFieldSpecFor returns the spec for a customer-flow field, or nil for
// fields outside the draft sequence (phone_lookup, invoice-flow fields).
func CustomerFieldSpecFor(field models.Field) *CustomerFieldSpec {
	for i := range customerFields {
		if customerFields[i].Field == field {
			return &customerFields[i]
		}
	}
	return nil
}

// NextCustomerField returns the question following field, or FieldNone when
// field is the last question. phone_lookup advances to the first question.
func NextCustomerField(field models.Field) models.Field {
	if field == models.FieldPhoneLookup {
		return customerFields[0].Field
	}
	for i := range customerFields {
		if customerFields[i].Field == field {
			if i+1 < len(customerFields) {
				return customerFields[i+1].Field
			}
			return models.FieldNone
		}
	}
	return models.FieldNone
}

// CustomerFieldCount is the number of draft questions; it bounds the prefill
// skip-ahead loop.
func CustomerFieldCount() int {
	return len(customerFields)
}
