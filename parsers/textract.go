package parsers

import (
	"bytes"
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"

	"portfolioai/models"
)

// Supported upload formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// TextExtractor pulls plain text out of uploaded resume documents.
type TextExtractor struct{}

// NewTextExtractor creates a document text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the plain text of a PDF or DOCX document. A malformed or
// unsupported document yields a models.ExtractionError.
func (e *TextExtractor) Extract(data []byte, format string) (string, error) {
	switch format {
	case FormatPDF:
		return e.extractPDF(data)
	case FormatDOCX:
		return e.extractDOCX(data)
	default:
		return "", &models.ExtractionError{Format: format, Err: fmt.Errorf("unsupported format")}
	}
}

// extractPDF concatenates the extracted text of every page. The pdf library
// panics on some malformed inputs, so the recover turns those into errors.
func (e *TextExtractor) extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &models.ExtractionError{Format: FormatPDF, Err: fmt.Errorf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &models.ExtractionError{Format: FormatPDF, Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &models.ExtractionError{Format: FormatPDF, Err: err}
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDOCX joins the document's paragraph texts with newlines.
func (e *TextExtractor) extractDOCX(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &models.ExtractionError{Format: FormatDOCX, Err: err}
	}

	var lines []string
	for _, para := range doc.Paragraphs() {
		var line strings.Builder
		for _, run := range para.Runs() {
			line.WriteString(run.Text())
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n"), nil
}
