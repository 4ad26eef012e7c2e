package bupot

import "strings"

// anchorA starts the line region extractor A walks. Text before the first
// occurrence is layout chrome and is discarded.
const anchorA = "Dokumen Referensi"

// Layout A anchor literals. Several are column headers the PDF layout emits
// as their own lines ("yyyy", "Tanggal", "mmyyyy"); the C.x labels are the
// form's box numbers.
const (
	aYearHeader    = "yyyy"
	aDateHeader    = "Tanggal"
	aPriorDocEnd   = "B.9"
	aIdentityBox   = "C.1"
	aNPWPLabel     = ":NPWP"
	aNPWPEnd       = "Nama Wajib PajakC.2:"
	aPeriodHeader  = "mmyyyy"
	aSignDateEnd   = "C.4"
	aFooterMention = "Bukti Pemotongan ini."
)

// aState enumerates the walk through a layout-A line sequence, in document
// order.
type aState int

const (
	aSkipHeading aState = iota
	aCaptureDocName
	aScanYearHeader
	aCaptureDocDate
	aScanDateHeader
	aCollectPriorDoc
	aScanIdentityBox
	aScanNPWPLabel
	aCollectNPWP
	aScanPeriodHeader
	aCollectSignDate
	aScanFooter
	aCaptureCertNumber
	aScanAmountRef
	aCaptureAmountRef2
	aDone
)

type machineA struct {
	state aState
	buf   string
	rec   *Record
}

// extractA runs the layout-A state machine. If the line sequence runs out
// before the machine finishes, the record keeps the fields assigned so far.
func extractA(text string) *Record {
	rec := &Record{}
	idx := strings.Index(text, anchorA)
	if idx < 0 {
		return rec
	}
	m := &machineA{rec: rec}
	for _, line := range strings.Split(text[idx:], "\n") {
		m.step(line)
		if m.state == aDone {
			break
		}
	}
	return rec
}

// step consumes one line. Every layout-A state consumes its line, so the
// machine advances strictly line by line.
func (m *machineA) step(line string) {
	switch m.state {
	case aSkipHeading:
		m.state = aCaptureDocName
	case aCaptureDocName:
		m.rec.SupportingDocuments = append(m.rec.SupportingDocuments, line)
		m.state = aScanYearHeader
	case aScanYearHeader:
		if line == aYearHeader {
			m.state = aCaptureDocDate
		}
	case aCaptureDocDate:
		if line == "" {
			// The name captured two states back had no date row behind it,
			// so it was not a document reference at all.
			m.rec.SupportingDocuments = m.rec.SupportingDocuments[:len(m.rec.SupportingDocuments)-1]
		} else {
			name, date := splitTrailingDate(line)
			m.rec.SupportingDocuments = append(m.rec.SupportingDocuments, name, date)
		}
		m.state = aScanDateHeader
	case aScanDateHeader:
		if line == aDateHeader {
			m.state = aCollectPriorDoc
		}
	case aCollectPriorDoc:
		if !strings.HasSuffix(line, aPriorDocEnd) {
			m.buf += line
			return
		}
		m.buf += strings.TrimSuffix(line, aPriorDocEnd)
		if m.buf != "" {
			name, date := splitTrailingDate(m.buf)
			m.rec.PriorDocuments = append(m.rec.PriorDocuments, name, date)
		}
		m.buf = ""
		m.state = aScanIdentityBox
	case aScanIdentityBox:
		if line == aIdentityBox {
			m.state = aScanNPWPLabel
		}
	case aScanNPWPLabel:
		if line == aNPWPLabel {
			m.state = aCollectNPWP
		}
	case aCollectNPWP:
		if !strings.HasSuffix(line, aNPWPEnd) {
			m.buf += line
			return
		}
		m.buf += strings.TrimSuffix(line, aNPWPEnd)
		m.rec.TaxpayerID = m.buf
		m.buf = ""
		m.state = aScanPeriodHeader
	case aScanPeriodHeader:
		if line == aPeriodHeader {
			m.state = aCollectSignDate
		}
	case aCollectSignDate:
		if !strings.HasSuffix(line, aSignDateEnd) {
			m.buf += line
			return
		}
		m.buf += strings.TrimSuffix(line, aSignDateEnd)
		m.rec.CertificateDate = NormalizeDate(m.buf)
		m.buf = ""
		m.state = aScanFooter
	case aScanFooter:
		if strings.Contains(line, aFooterMention) {
			m.state = aCaptureCertNumber
		}
	case aCaptureCertNumber:
		m.rec.CertificateNumber = line
		m.state = aScanAmountRef
	case aScanAmountRef:
		if len(line) > 4 {
			m.rec.AmountRef1 = line
			m.state = aCaptureAmountRef2
		}
	case aCaptureAmountRef2:
		m.rec.AmountRef2 = line
		m.state = aDone
	}
}
