package bupot

// Extract detects the certificate layout of text and runs the matching
// extractor. It always returns a non-nil record; unrecognized or empty input
// yields the zero record alongside its format tag.
func Extract(text string) (FormatSignature, *Record) {
	format := DetectFormat(text)
	return format, ExtractAs(text, format)
}

// ExtractAs routes text to the extractor for an already-detected format.
// Formats other than A, B and C return a zero-valued record of the same
// shape as a successful extraction, never nil.
func ExtractAs(text string, format FormatSignature) *Record {
	switch format {
	case FormatA:
		return extractA(text)
	case FormatB:
		return extractB(text)
	case FormatC:
		return extractC(text)
	default:
		return &Record{}
	}
}
