package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidateResult reports whether a file is a readable certificate PDF.
// Validation failures are reported in the result, not as errors.
type ValidateResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Validator checks PDF files before extraction.
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a validator with the given file size cap.
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateFile runs all checks on the file at path.
func (v *Validator) ValidateFile(path string) (*ValidateResult, error) {
	result := &ValidateResult{Path: path}

	if err := v.validatePDFFile(path); err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // validation failures belong in the result
	}

	result.Valid = true
	return result, nil
}

// IsValidPDF performs a quick check to see if a file is a valid PDF.
func (v *Validator) IsValidPDF(path string) bool {
	return v.validatePDFFile(path) == nil
}

func (v *Validator) validatePDFFile(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", path)
	}
	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	f, _, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("invalid PDF file: %w", err)
	}
	defer f.Close()

	// Certificates come from several generator versions; relaxed mode accepts
	// the structural quirks the strict validator rejects.
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("PDF structure validation failed: %w", err)
	}

	return nil
}
