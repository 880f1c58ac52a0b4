package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(r io.ReaderAt, size int64) (string, error)
	ExtractUploadedText(file *multipart.FileHeader) (string, error)
	ExtractFileText(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText joins the extractable text of every page with single spaces.
// A document with no text at all, a scanned image for instance, is an
// extraction failure.
func (p *pdfParserService) ExtractText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFExtraction, err)
	}

	text, _ := pageTexts(reader)
	if text == "" {
		return "", ErrPDFExtraction
	}

	return text, nil
}

func (p *pdfParserService) ExtractUploadedText(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return p.ExtractText(src, file.Size)
}

func (p *pdfParserService) ExtractFileText(filePath string) (*PDFContent, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	text, pages := pageTexts(reader)
	if text == "" {
		return nil, ErrPDFExtraction
	}

	return &PDFContent{
		Text:      text,
		PageCount: pages,
		FilePath:  filePath,
	}, nil
}

// pageTexts joins the non-empty pages with single spaces. Unreadable pages
// count as empty.
func pageTexts(reader *pdf.Reader) (string, int) {
	totalPage := reader.NumPage()
	texts := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}

	return strings.Join(texts, " "), totalPage
}
