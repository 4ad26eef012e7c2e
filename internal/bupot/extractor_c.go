package bupot

import "strings"

// anchorC starts the line region extractor C walks.
const anchorC = "Bukti Pemotongan ini."

// cState enumerates the walk through a layout-C line sequence. This layout
// puts the certificate number right after the footer mention and needs a
// two-line lookahead to tell a document reference from a bare taxpayer ID.
type cState int

const (
	cSkipHeading cState = iota
	cCaptureCertNumber
	cSkipBody2
	cSkipBody3
	cSkipBody4
	cSkipBody5
	cCaptureAmounts
	cSkipBody7
	cBufferFirstLine
	cClassifySecondLine
	cCaptureNPWP
	// cFlushDocs resolves the buffered lines into B.7 or B.8 entries. It
	// consumes no input.
	cFlushDocs
	cCaptureSignDate
	cDone
)

type machineC struct {
	rec    *Record
	st     cState
	first  string
	second string
	hasDoc bool
}

// extractC runs the layout-C state machine.
func extractC(text string) *Record {
	rec := &Record{}
	idx := strings.Index(text, anchorC)
	if idx < 0 {
		return rec
	}
	m := &machineC{rec: rec}
	for _, line := range strings.Split(text[idx:], "\n") {
		for !m.step(line) {
		}
		if m.st == cDone {
			break
		}
	}
	return rec
}

// step handles one line and reports whether the line was consumed.
func (m *machineC) step(line string) bool {
	switch m.st {
	case cSkipHeading:
		m.st = cCaptureCertNumber
	case cCaptureCertNumber:
		m.rec.CertificateNumber = stripSpace(line)
		m.st = cSkipBody2
	case cSkipBody2:
		m.st = cSkipBody3
	case cSkipBody3:
		m.st = cSkipBody4
	case cSkipBody4:
		m.st = cSkipBody5
	case cSkipBody5:
		m.st = cCaptureAmounts
	case cCaptureAmounts:
		m.rec.AmountRef1, m.rec.AmountRef2 = splitAmountRefsC(line)
		m.st = cSkipBody7
	case cSkipBody7:
		m.st = cBufferFirstLine
	case cBufferFirstLine:
		m.first = line
		m.st = cClassifySecondLine
	case cClassifySecondLine:
		if s := stripSpace(line); len(s) == 15 && allDigits(s) {
			// The buffered line was the sole document reference; this line is
			// already the taxpayer ID.
			m.rec.TaxpayerID = s
			m.st = cFlushDocs
		} else {
			m.second = line
			m.hasDoc = true
			m.st = cCaptureNPWP
		}
	case cCaptureNPWP:
		m.rec.TaxpayerID = stripSpace(line)
		m.st = cFlushDocs
	case cFlushDocs:
		if m.hasDoc {
			name, date := SplitDocDate(m.second)
			m.rec.SupportingDocuments = append(m.rec.SupportingDocuments, m.first, name, date)
		} else {
			name, date := SplitDocDate(m.first)
			m.rec.PriorDocuments = append(m.rec.PriorDocuments, name, date)
		}
		m.st = cCaptureSignDate
		return false
	case cCaptureSignDate:
		m.rec.CertificateDate = NormalizeDate(stripSpace(line))
		m.st = cDone
	}
	return true
}

// splitAmountRefsC pulls the two amount references out of the layout-C
// amounts row, anchored on the row's first '-': the first reference runs from
// the start of the row through 4 characters past the dash, the second covers
// the 9 characters after that. A row without a dash, or too short for the
// spans, leaves the references empty.
func splitAmountRefsC(line string) (ref1, ref2 string) {
	p := strings.IndexByte(line, '-')
	if p < 0 || p+5 > len(line) {
		return "", ""
	}
	ref1 = line[:p+5]
	if p+14 <= len(line) {
		ref2 = line[p+5 : p+14]
	}
	return ref1, ref2
}
