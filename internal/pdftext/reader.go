// Package pdftext converts certificate PDFs into the linearized text the
// extraction core consumes. The line segmentation it produces is load-bearing:
// the layout state machines key on exact line boundaries and glued tokens, so
// any change to the row assembly here must be verified against known
// certificate fixtures.
package pdftext

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// yTolerance is the maximum vertical distance, in PDF points, between two
// text fragments that still count as the same row.
const yTolerance = 2.0

// Result carries the linearized text of one PDF.
type Result struct {
	Text  string `json:"text"`
	Path  string `json:"path"`
	Pages int    `json:"pages"`
	Size  int64  `json:"size"`
}

// Reader extracts and linearizes the text layer of PDF files.
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a reader with the given file size cap.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024,
	}
}

// ReadFile extracts the text layer of the PDF at path, one line per visual
// row.
func (r *Reader) ReadFile(path string) (*Result, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	text, err := r.linearize(pdfReader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text content: %w", err)
	}

	return &Result{
		Text:  text,
		Path:  path,
		Pages: pdfReader.NumPage(),
		Size:  fileInfo.Size(),
	}, nil
}

// linearize walks every page and assembles its positioned text fragments
// into rows.
func (r *Reader) linearize(pdfReader *pdf.Reader) (string, error) {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content := pageText(page)
		if content == "" {
			continue
		}
		if pageNum > 1 {
			builder.WriteString("\n")
		}

		if totalLength+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}
		builder.WriteString(content)
		totalLength += len(content)
	}

	// A PDF with no text layer (scanned certificate) linearizes to the empty
	// string; the extraction core classifies that as the empty format rather
	// than an error.
	return builder.String(), nil
}

// pageText extracts one page's fragments, recovering from parser panics on
// damaged pages by returning what was assembled before the failure.
func pageText(page pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	return assembleLines(page.Content().Text)
}

// assembleLines orders text fragments top-to-bottom, left-to-right and joins
// them into newline-separated rows. Fragments within a row are concatenated
// with no separator: narrow columns come out glued to their neighbors, which
// is exactly the segmentation the extraction state machines are written
// against.
func assembleLines(texts []pdf.Text) string {
	if len(texts) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if diff := sorted[i].Y - sorted[j].Y; diff > yTolerance || diff < -yTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var builder strings.Builder
	rowY := sorted[0].Y
	for i, t := range sorted {
		if i > 0 {
			if diff := rowY - t.Y; diff > yTolerance || diff < -yTolerance {
				builder.WriteString("\n")
				rowY = t.Y
			}
		}
		builder.WriteString(t.S)
	}
	return builder.String()
}
