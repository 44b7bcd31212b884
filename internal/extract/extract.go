// Package extract pulls plain text out of uploaded transcript documents.
// Scanned-image transcripts arrive as OCR text through text/plain; this
// package only handles digitally-readable files.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted for stored transcript objects.
const (
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// Text extracts the textual content of a document by MIME type.
func Text(mime string, data []byte) (string, error) {
	switch mime {
	case MimePlain:
		return string(data), nil
	case MimePDF:
		return pdfText(data)
	case MimeDocx:
		return docxText(data)
	default:
		return "", fmt.Errorf("unsupported document type: %s", mime)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
