// Package bupot extracts structured fields from the linearized text layer of
// Indonesian withholding-tax certificates ("Bukti Pemotongan" / ebupot).
//
// The certificates are issued in three incompatible visual layouts. Once a
// PDF's text layer is flattened to lines, each layout produces its own
// idiosyncratic line sequence, and some narrow or rotated columns come out
// with their characters permuted relative to reading order. The package
// detects which layout produced a given text and runs the matching
// line-walking state machine over it. Extraction is best-effort: if an
// expected anchor line never appears, the machine stops where it is and the
// record keeps whatever fields were assigned up to that point.
//
// Everything in this package is a pure function of the input text. No state
// survives a call, so concurrent use needs no coordination.
package bupot

// Record holds the fields extracted from one certificate. Field comments give
// the form box each value comes from. Unassigned fields stay at their zero
// value.
type Record struct {
	// CertificateNumber is the certificate's identifying number (box H.1).
	CertificateNumber string `json:"certificate_number"`
	// AmountRef1 and AmountRef2 are layout-specific fragments describing the
	// withheld-amount references (boxes B.1 and B.2).
	AmountRef1 string `json:"amount_ref_1"`
	AmountRef2 string `json:"amount_ref_2"`
	// SupportingDocuments alternates document name and ISO date entries
	// (box B.7): [name, date, name, date, ...].
	SupportingDocuments []string `json:"supporting_documents"`
	// PriorDocuments has the same alternating shape for box B.8.
	PriorDocuments []string `json:"prior_documents"`
	// TaxpayerID is the 15-digit NPWP, digits only (box C.1).
	TaxpayerID string `json:"taxpayer_id"`
	// CertificateDate is the issue date in YYYY-MM-DD form (box C.3).
	CertificateDate string `json:"certificate_date"`
}

// FormatSignature identifies which certificate layout produced a text, or
// that no layout could be recognized.
type FormatSignature string

const (
	// FormatA through FormatC are the three recognized certificate layouts.
	FormatA FormatSignature = "A"
	FormatB FormatSignature = "B"
	FormatC FormatSignature = "C"
	// FormatEmpty marks input that is empty or whitespace-only.
	FormatEmpty FormatSignature = "Z"
	// FormatUnknown marks non-empty input matching no layout.
	FormatUnknown FormatSignature = "U"
)

// String returns the one-letter signature tag.
func (f FormatSignature) String() string {
	return string(f)
}

// Recognized reports whether the signature names an extractable layout.
func (f FormatSignature) Recognized() bool {
	return f == FormatA || f == FormatB || f == FormatC
}
