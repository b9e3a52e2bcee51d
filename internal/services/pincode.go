package services

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
)

// PincodeMatcher resolves a pincode the business does not serve to the
// numerically nearest one it does. The serviceable set is scraped from the
// branch list's free-text address column.
type PincodeMatcher struct {
	pincodes []int
}

var pincodeTokenPattern = regexp.MustCompile(`\b(\d{6})\b`)

// NewPincodeMatcher loads the branch CSV at path and collects every 6-digit
// token found in the address column. Column order is not assumed; all cells
// are scanned.
func NewPincodeMatcher(path string) (*PincodeMatcher, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open branch list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse branch list: %w", err)
	}

	seen := make(map[int]bool)
	var pincodes []int
	for _, record := range records {
		for _, cell := range record {
			for _, token := range pincodeTokenPattern.FindAllString(cell, -1) {
				code, err := strconv.Atoi(token)
				if err != nil || code < 100000 {
					continue
				}
				if !seen[code] {
					seen[code] = true
					pincodes = append(pincodes, code)
				}
			}
		}
	}

	if len(pincodes) == 0 {
		log.Printf("⚠️ No pincodes found in branch list %s", path)
	}
	return &PincodeMatcher{pincodes: pincodes}, nil
}

// Nearest returns the serviceable pincode numerically closest to target.
// ok is false when target is not a 6-digit number or the matcher holds no
// pincodes; shorter entries must be re-asked, not silently replaced.
func (m *PincodeMatcher) Nearest(target string) (string, bool) {
	code, err := strconv.Atoi(target)
	if err != nil || code < 100000 || code > 999999 {
		return "", false
	}

	best := 0
	bestDiff := -1
	for _, p := range m.pincodes {
		diff := code - p
		if diff < 0 {
			diff = -diff
		}
		if bestDiff == -1 || diff < bestDiff {
			bestDiff = diff
			best = p
		}
	}
	if bestDiff == -1 {
		return "", false
	}
	return strconv.Itoa(best), true
}
