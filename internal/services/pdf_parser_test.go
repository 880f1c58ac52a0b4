package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a minimal PDF with one page per entry. An empty entry is a
// page with no content stream, like a scanned page without a text layer.
func buildPDF(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int

	writeObject := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObject("<< /Type /Catalog /Pages 2 0 R >>")
	writeObject(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObject("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pages {
		page := "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >>"
		if text != "" {
			page += fmt.Sprintf(" /Contents %d 0 R", 5+2*i)
		}
		writeObject(page + " >>")

		content := ""
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		writeObject(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xrefAt := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, offset := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefAt)

	return buf.Bytes()
}

func extract(t *testing.T, data []byte) (string, error) {
	t.Helper()
	return NewPDFParserService().ExtractText(bytes.NewReader(data), int64(len(data)))
}

func TestExtractText_SinglePage(t *testing.T) {
	text, err := extract(t, buildPDF("Hello resume"))

	require.NoError(t, err)
	assert.Equal(t, "Hello resume", text)
}

func TestExtractText_JoinsPagesWithSingleSpaces(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{name: "two pages", pages: []string{"Go developer", "Five years"}, want: "Go developer Five years"},
		{name: "blank page between", pages: []string{"Go developer", "", "Five years"}, want: "Go developer Five years"},
		{name: "blank first page", pages: []string{"", "Five years"}, want: "Five years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := extract(t, buildPDF(tt.pages...))

			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestExtractText_NoTextIsExtractionError(t *testing.T) {
	_, err := extract(t, buildPDF("", ""))

	assert.ErrorIs(t, err, ErrPDFExtraction)
}

func TestExtractText_NotAPDF(t *testing.T) {
	data := []byte(strings.Repeat("this is a plain text file, not a PDF\n", 5))

	_, err := extract(t, data)

	require.ErrorIs(t, err, ErrPDFExtraction)
	assert.Contains(t, err.Error(), "not a PDF")
}

func TestExtractFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF("What is a goroutine?", "What is a channel?"), 0644))

	content, err := NewPDFParserService().ExtractFileText(path)

	require.NoError(t, err)
	assert.Equal(t, 2, content.PageCount)
	assert.Equal(t, "What is a goroutine? What is a channel?", content.Text)
	assert.Equal(t, path, content.FilePath)
}

func TestExtractFileText_Blank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(""), 0644))

	_, err := NewPDFParserService().ExtractFileText(path)

	assert.ErrorIs(t, err, ErrPDFExtraction)
}
