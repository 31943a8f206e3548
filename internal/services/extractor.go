package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractionFailure tags why a document produced no text.
type ExtractionFailure string

const (
	ExtractionOK          ExtractionFailure = ""
	ExtractionUnsupported ExtractionFailure = "unsupported_format"
	ExtractionReadError   ExtractionFailure = "read_error"
	ExtractionParseError  ExtractionFailure = "parse_error"
)

const unsupportedFormatMessage = "Unsupported file format."

// ExtractionResult is either extracted text or a typed failure.
type ExtractionResult struct {
	Text    string
	Failure ExtractionFailure
	Format  string // pdf, docx or the raw extension
	Detail  string
}

func (r ExtractionResult) OK() bool {
	return r.Failure == ExtractionOK
}

// Message is the user-facing text for a failed extraction, or the text itself
// on success.
func (r ExtractionResult) Message() string {
	switch r.Failure {
	case ExtractionOK:
		return r.Text
	case ExtractionUnsupported:
		return unsupportedFormatMessage
	default:
		return fmt.Sprintf("Error extracting %s text: %s", strings.ToUpper(r.Format), r.Detail)
	}
}

type TextExtractor interface {
	Extract(filePath string) ExtractionResult
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract picks a strategy by file extension. It never panics and never
// returns an error; failures are reported in the result.
func (e *textExtractor) Extract(filePath string) ExtractionResult {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".pdf":
		return e.extractPDF(filePath)
	case ".docx":
		return e.extractDOCX(filePath)
	default:
		return ExtractionResult{Failure: ExtractionUnsupported, Format: strings.TrimPrefix(ext, ".")}
	}
}

func (e *textExtractor) extractPDF(filePath string) (result ExtractionResult) {
	const format = "pdf"

	if err := checkReadable(filePath); err != nil {
		return failed(format, ExtractionReadError, err)
	}

	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			result = failed(format, ExtractionParseError, fmt.Errorf("malformed PDF: %v", r))
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return failed(format, ExtractionParseError, fmt.Errorf("failed to open PDF: %w", err))
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return failed(format, ExtractionParseError, fmt.Errorf("failed to read page %d: %w", pageIndex, err))
		}

		textBuilder.WriteString(text)
	}

	return ExtractionResult{Text: textBuilder.String(), Format: format}
}

func (e *textExtractor) extractDOCX(filePath string) (result ExtractionResult) {
	const format = "docx"

	if err := checkReadable(filePath); err != nil {
		return failed(format, ExtractionReadError, err)
	}

	defer func() {
		if r := recover(); r != nil {
			result = failed(format, ExtractionParseError, fmt.Errorf("malformed DOCX: %v", r))
		}
	}()

	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return failed(format, ExtractionParseError, fmt.Errorf("failed to open DOCX: %w", err))
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return failed(format, ExtractionParseError, err)
	}

	var textBuilder strings.Builder
	for _, para := range paragraphs {
		textBuilder.WriteString(para)
		textBuilder.WriteString("\n")
	}

	return ExtractionResult{Text: textBuilder.String(), Format: format}
}

// docxParagraphs walks WordprocessingML and returns the text of each w:p in
// document order. Only run content counts: w:t text, w:tab as \t, w:br and
// w:cr as \n. Page and column breaks add nothing. A paragraph nested inside
// another (text boxes) is returned as its own entry right after its parent,
// and the parent keeps its runs on both sides of it.
func docxParagraphs(content string) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewBufferString(content))

	var (
		paragraphs []string
		open       []*docxParagraph
		elements   []string
	)

	parent := func() string {
		if len(elements) < 2 {
			return ""
		}
		return elements[len(elements)-2]
	}

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			elements = append(elements, t.Name.Local)

			if t.Name.Local == "p" {
				open = append(open, &docxParagraph{index: len(paragraphs)})
				paragraphs = append(paragraphs, "")
				continue
			}
			if len(open) == 0 || parent() != "r" {
				continue
			}

			current := open[len(open)-1]
			switch t.Name.Local {
			case "tab":
				current.text.WriteString("\t")
			case "cr":
				current.text.WriteString("\n")
			case "br":
				if breakType(t) == "" || breakType(t) == "textWrapping" {
					current.text.WriteString("\n")
				}
			}
		case xml.EndElement:
			if len(elements) > 0 {
				elements = elements[:len(elements)-1]
			}
			if t.Name.Local == "p" && len(open) > 0 {
				done := open[len(open)-1]
				open = open[:len(open)-1]
				paragraphs[done.index] = done.text.String()
			}
		case xml.CharData:
			if len(open) > 0 && len(elements) > 0 && elements[len(elements)-1] == "t" && parent() == "r" {
				open[len(open)-1].text.Write(t)
			}
		}
	}

	return paragraphs, nil
}

type docxParagraph struct {
	index int
	text  strings.Builder
}

func breakType(el xml.StartElement) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == "type" {
			return attr.Value
		}
	}
	return ""
}

func checkReadable(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("failed to read file: %s is a directory", filePath)
	}
	return nil
}

func failed(format string, kind ExtractionFailure, err error) ExtractionResult {
	return ExtractionResult{Failure: kind, Format: format, Detail: err.Error()}
}
