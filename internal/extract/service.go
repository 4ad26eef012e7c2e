// Package extract orchestrates certificate extraction: PDF validation, text
// linearization and the layout-specific field extraction.
package extract

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pajakio/bupot-extract/internal/bupot"
	"github.com/pajakio/bupot-extract/internal/pdftext"
)

// Service wires the PDF reader and validator to the extraction core.
type Service struct {
	maxFileSize int64
	reader      *pdftext.Reader
	validator   *pdftext.Validator
}

// NewService creates a service with the given PDF file size cap.
func NewService(maxFileSize int64) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		reader:      pdftext.NewReader(maxFileSize),
		validator:   pdftext.NewValidator(maxFileSize),
	}
}

// ExtractFile linearizes the PDF at the requested path and extracts the
// certificate fields from it.
func (s *Service) ExtractFile(req ExtractFileRequest) (*ExtractResult, error) {
	text, err := s.reader.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}

	format, record := bupot.Extract(text.Text)
	return &ExtractResult{
		ID:     uuid.NewString(),
		Path:   text.Path,
		Format: format.String(),
		Record: record,
		Pages:  text.Pages,
		Size:   text.Size,
	}, nil
}

// ExtractText extracts certificate fields from already-linearized text.
func (s *Service) ExtractText(req ExtractTextRequest) (*ExtractResult, error) {
	format, record := bupot.Extract(req.Text)
	return &ExtractResult{
		ID:     uuid.NewString(),
		Format: format.String(),
		Record: record,
	}, nil
}

// LinearizeFile returns the linearized text of the PDF at path without
// running extraction on it.
func (s *Service) LinearizeFile(path string) (string, error) {
	text, err := s.reader.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read certificate: %w", err)
	}
	return text.Text, nil
}

// ValidateFile checks whether the requested file is a readable PDF.
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	result, err := s.validator.ValidateFile(req.Path)
	if err != nil {
		return nil, err
	}
	return &ValidateFileResult{
		Path:    result.Path,
		Valid:   result.Valid,
		Message: result.Message,
	}, nil
}

// MaxFileSize returns the configured PDF size cap.
func (s *Service) MaxFileSize() int64 {
	return s.maxFileSize
}
