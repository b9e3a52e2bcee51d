package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GaganNGowda/Invoice-Generator/internal/models"
)

func TestTryPrefillNameSplitting(t *testing.T) {
	contact := &models.ContactInfo{Name: "Jane Doe Smith"}

	first, ok := TryPrefill(models.FieldFirstName, contact)
	assert.True(t, ok)
	assert.Equal(t, "Jane", first)

	last, ok := TryPrefill(models.FieldLastName, contact)
	assert.True(t, ok)
	assert.Equal(t, "Doe Smith", last)
}

func TestTryPrefillSingleTokenNameLeavesLastName(t *testing.T) {
	contact := &models.ContactInfo{Name: "Cher"}

	first, ok := TryPrefill(models.FieldFirstName, contact)
	assert.True(t, ok)
	assert.Equal(t, "Cher", first)

	_, ok = TryPrefill(models.FieldLastName, contact)
	assert.False(t, ok)
}

func TestTryPrefillPhoneStripsFormatting(t *testing.T) {
	contact := &models.ContactInfo{PhoneNumber: "+91 98765 43210"}

	phone, ok := TryPrefill(models.FieldPhoneLookup, contact)
	assert.True(t, ok)
	assert.Equal(t, "919876543210", phone)
}

func TestTryPrefillRejectsNonNumericPhone(t *testing.T) {
	contact := &models.ContactInfo{PhoneNumber: "call me maybe"}

	_, ok := TryPrefill(models.FieldPhone, contact)
	assert.False(t, ok)
}

func TestTryPrefillNeverAnswersSalutation(t *testing.T) {
	contact := &models.ContactInfo{
		Name:        "Jane Doe",
		PhoneNumber: "9876543210",
		Address:     "1 Main St",
		City:        "Bengaluru",
		State:       "Karnataka",
		Pincode:     "560001",
	}

	_, ok := TryPrefill(models.FieldSalutation, contact)
	assert.False(t, ok)

	_, ok = TryPrefill(models.FieldPlaceOfContact, contact)
	assert.False(t, ok)
}

func TestTryPrefillZipRequiresValidPincode(t *testing.T) {
	_, ok := TryPrefill(models.FieldZipCode, &models.ContactInfo{Pincode: "12345"})
	assert.False(t, ok)

	zip, ok := TryPrefill(models.FieldZipCode, &models.ContactInfo{Pincode: "560001"})
	assert.True(t, ok)
	assert.Equal(t, "560001", zip)
}

func TestPrefillExhausted(t *testing.T) {
	contact := &models.ContactInfo{Name: "Jane Doe", PhoneNumber: "9876543210"}

	// From salutation onward the phone field can still be answered.
	assert.False(t, PrefillExhausted(models.FieldSalutation, contact))

	// Past the phone field nothing remains.
	assert.True(t, PrefillExhausted(models.FieldPlaceOfContact, contact))
}

func TestTryPrefillNilContact(t *testing.T) {
	_, ok := TryPrefill(models.FieldFirstName, nil)
	assert.False(t, ok)
}
