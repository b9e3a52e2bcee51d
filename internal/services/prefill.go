package services

import (
	"strings"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

// TryPrefill answers the question for field from a previously extracted
// contact record instead of asking the user. ok is false when the record has
// nothing usable for that field.
//
// Name handling mirrors how the extraction reports it: a full name is split on
// whitespace, the first token filling first_name and the remainder last_name.
// A single-token name leaves last_name unanswered so the user is still asked.
func TryPrefill(field models.Field, contact *models.ContactInfo) (string, bool) {
	if contact == nil {
		return "", false
	}

	switch field {
	case models.FieldPhoneLookup, models.FieldPhone:
		digits, ok := NormalizePhone(contact.PhoneNumber)
		if !ok {
			return "", false
		}
		return digits, true

	case models.FieldFirstName:
		tokens := strings.Fields(contact.Name)
		if len(tokens) == 0 {
			return "", false
		}
		return tokens[0], true

	case models.FieldLastName:
		tokens := strings.Fields(contact.Name)
		if len(tokens) < 2 {
			return "", false
		}
		return strings.Join(tokens[1:], " "), true

	case models.FieldAddress:
		return nonEmpty(contact.Address)

	case models.FieldCity:
		return nonEmpty(contact.City)

	case models.FieldState:
		return nonEmpty(contact.State)

	case models.FieldZipCode:
		zip := strings.TrimSpace(contact.Pincode)
		if !ValidZip(zip) {
			return "", false
		}
		return zip, true
	}

	// salutation and place_of_contact are never extracted.
	return "", false
}

// PrefillExhausted reports whether the contact record can answer any question
// at or after field. When it cannot, the record is dead weight and the caller
// drops it from the session.
func PrefillExhausted(field models.Field, contact *models.ContactInfo) bool {
	for f := field; f != models.FieldNone; f = NextCustomerField(f) {
		if _, ok := TryPrefill(f, contact); ok {
			return false
		}
	}
	return true
}

func nonEmpty(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	return trimmed, trimmed != ""
}
