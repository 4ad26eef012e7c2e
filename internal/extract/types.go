package extract

import "github.com/pajakio/bupot-extract/internal/bupot"

// ExtractFileRequest asks for extraction from a certificate PDF on disk.
type ExtractFileRequest struct {
	Path string `json:"path"`
}

// ExtractTextRequest asks for extraction from already-linearized text, for
// callers that run their own PDF-to-text step.
type ExtractTextRequest struct {
	Text string `json:"text"`
}

// ExtractResult is the outcome of one extraction run. Format is the detected
// layout tag; Record carries the extracted fields and is always present, with
// empty defaults for anything the layout's machine never reached.
type ExtractResult struct {
	ID     string        `json:"id"`
	Path   string        `json:"path,omitempty"`
	Format string        `json:"format"`
	Record *bupot.Record `json:"record"`
	Pages  int           `json:"pages,omitempty"`
	Size   int64         `json:"size,omitempty"`
}

// ValidateFileRequest asks whether a file is a readable certificate PDF.
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// ValidateFileResult reports the validation outcome.
type ValidateFileResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}
