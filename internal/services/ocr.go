package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentTextService turns uploaded documents into plain text for the
// extraction pipeline. PDF and text uploads are supported; image OCR is not.
type DocumentTextService struct{}

func NewDocumentTextService() *DocumentTextService {
	return &DocumentTextService{}
}

// ExtractText returns the plain text of an uploaded document based on its
// declared content type and file name.
func (d *DocumentTextService) ExtractText(reader io.Reader, fileName, contentType string) (string, error) {
	switch {
	case contentType == "application/pdf" || strings.HasSuffix(strings.ToLower(fileName), ".pdf"):
		return d.extractPDFText(reader)
	case strings.HasPrefix(contentType, "text/") || strings.HasSuffix(strings.ToLower(fileName), ".txt"):
		raw, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("read text upload: %w", err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("unsupported document type %q", contentType)
	}
}

func (d *DocumentTextService) extractPDFText(reader io.Reader) (string, error) {
	// The PDF reader needs the file size, so buffer the upload first.
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(reader)
	if err != nil {
		return "", fmt.Errorf("buffer pdf upload: %w", err)
	}

	pdfReader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var textBuilder strings.Builder
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", pageNum, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S + " ")
			}
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}
