package bupot

import "strings"

// Anchor phrases that distinguish the three layouts once the PDF text layer
// is flattened. The newlines are part of the signature: they encode the line
// segmentation the upstream text extraction produces for each layout.
const (
	sigLayoutA = "FORMULIR BPBS\nH.1\nH.2\nH.3"
	sigLayoutB = "FORMULIR BPBS\nBukti Pemotongan"
	sigLayoutC = "FORMULIR BPBS\nH.1\nNOMOR"
)

// DetectFormat classifies the text as one of the three known certificate
// layouts, empty input, or unrecognized. Rules are checked in order and the
// first match wins, so the priority A > B > C > Z > U holds even when several
// anchor phrases coexist in one text.
func DetectFormat(text string) FormatSignature {
	switch {
	case strings.Contains(text, sigLayoutA):
		return FormatA
	case strings.Contains(text, sigLayoutB):
		return FormatB
	case strings.Contains(text, sigLayoutC):
		return FormatC
	case strings.TrimSpace(text) == "":
		return FormatEmpty
	default:
		return FormatUnknown
	}
}
