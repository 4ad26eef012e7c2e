package bupot

import "strings"

// anchorB starts the line region extractor B walks.
const anchorB = "PPh Tidak Final"

// Layout B anchor literals. The glued box labels ("B.1B.2B.3B.4B.5B.6",
// "C.2Nama Wajib Pajak:") are how this layout's table headers come out of the
// text layer.
const (
	bAmountHeader   = "B.1B.2B.3B.4B.5B.6"
	bDocDateHeader  = "ddmmyyyy"
	bNoDocMarker    = "B.9"
	bIdentityHeader = "C. IDENTITAS PEMOTONG"
	bNameLabel      = "C.2Nama Wajib Pajak:"
)

// bState enumerates the walk through a layout-B line sequence.
type bState int

const (
	bSkipTitle bState = iota
	bSkipSubtitle
	bCaptureCertNumber
	bScanAmountHeader
	bCaptureAmounts
	bScanDocDateHeader
	bClassifyDocName
	bCaptureDocDate
	// bReserved is a placeholder between the document reference block and the
	// identity block. It never consumes a line. Kept so the state list lines
	// up with the document regions; the B.8 group is not populated in this
	// layout.
	bReserved
	bScanIdentityHeader
	bCaptureNPWP
	bScanNameLabel
	bCaptureSignDate
	bDone
)

type machineB struct {
	state bState
	rec   *Record
}

// extractB runs the layout-B state machine. This layout is the one whose
// narrow rotated columns arrive scrambled, so the captured taxpayer ID and
// dates go through the fixed descrambling permutations.
func extractB(text string) *Record {
	rec := &Record{}
	idx := strings.Index(text, anchorB)
	if idx < 0 {
		return rec
	}
	m := &machineB{rec: rec}
	for _, line := range strings.Split(text[idx:], "\n") {
		// A state that does not consume its line hands the same line to the
		// next state.
		for !m.step(line) {
		}
		if m.state == bDone {
			break
		}
	}
	return rec
}

// step handles one line and reports whether the line was consumed.
func (m *machineB) step(line string) bool {
	switch m.state {
	case bSkipTitle:
		m.state = bSkipSubtitle
	case bSkipSubtitle:
		m.state = bCaptureCertNumber
	case bCaptureCertNumber:
		m.rec.CertificateNumber = line
		m.state = bScanAmountHeader
	case bScanAmountHeader:
		if line == bAmountHeader {
			m.state = bCaptureAmounts
		}
	case bCaptureAmounts:
		m.rec.AmountRef1, m.rec.AmountRef2 = splitAmountRefsB(line)
		m.state = bScanDocDateHeader
	case bScanDocDateHeader:
		if line == bDocDateHeader {
			m.state = bClassifyDocName
		}
	case bClassifyDocName:
		if line == bNoDocMarker {
			// No document reference present; the layout still reserves the
			// three B.7 slots.
			m.rec.SupportingDocuments = append(m.rec.SupportingDocuments, "", "", "")
			m.state = bReserved
		} else {
			m.rec.SupportingDocuments = append(m.rec.SupportingDocuments, line)
			m.state = bCaptureDocDate
		}
	case bCaptureDocDate:
		cut := len(line) - 8
		if cut < 0 {
			cut = 0
		}
		m.rec.SupportingDocuments = append(m.rec.SupportingDocuments,
			line[:cut], docDateOrderB.Decode(line[cut:]))
		m.state = bReserved
	case bReserved:
		m.state = bScanIdentityHeader
		return false
	case bScanIdentityHeader:
		if strings.HasPrefix(line, bIdentityHeader) {
			m.state = bCaptureNPWP
		}
	case bCaptureNPWP:
		m.rec.TaxpayerID = npwpOrderB.Decode(line)
		m.state = bScanNameLabel
	case bScanNameLabel:
		if line == bNameLabel {
			m.state = bCaptureSignDate
		}
	case bCaptureSignDate:
		m.rec.CertificateDate = signDateOrderB.Decode(line)
		m.state = bDone
	}
	return true
}

// splitAmountRefsB pulls the two amount references out of the glued layout-B
// amounts row. The first reference sits at the line's tail: 7 characters when
// the character 11 positions from the end is a decimal comma, 6 otherwise.
// The second spans from 2 characters before the row's first '-' to 7 after
// it. A row too short for either rule leaves that reference empty.
func splitAmountRefsB(line string) (ref1, ref2 string) {
	if n := len(line); n >= 11 && line[n-11] == ',' {
		ref1 = line[n-7:]
	} else if n >= 6 {
		ref1 = line[n-6:]
	}
	if i := strings.IndexByte(line, '-'); i >= 2 && i+8 <= len(line) {
		ref2 = line[i-2 : i+8]
	}
	return ref1, ref2
}
