package bupot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var layoutCText = strings.Join([]string{
	"FORMULIR BPBS",
	"H.1",
	"NOMOR",
	"dinyatakan sah dalam Bukti Pemotongan ini.",
	" BP - 03 / 2024 / 00045 ",
	"A. IDENTITAS PENERIMA",
	"NPWP / NIK",
	"Nama",
	"B. PPh YANG DIPOTONG",
	"24-104 2% 10.000.000 200.000",
	"B.7 Dokumen Referensi",
	"Faktur Pajak",
	"010.002-24.00000001   05082023",
	" 123 456 789 012 345 ",
	" 15012024 ",
}, "\n")

func TestExtractorCWithDocumentReference(t *testing.T) {
	require.Equal(t, FormatC, DetectFormat(layoutCText))

	rec := extractC(layoutCText)

	assert.Equal(t, "BP-03/2024/00045", rec.CertificateNumber)
	assert.Equal(t, "24-104 ", rec.AmountRef1)
	assert.Equal(t, "2% 10.000", rec.AmountRef2)
	assert.Equal(t, []string{"Faktur Pajak", "010.002-24.00000001   ", "2023-08-05"},
		rec.SupportingDocuments)
	assert.Empty(t, rec.PriorDocuments)
	assert.Equal(t, "123456789012345", rec.TaxpayerID)
	assert.Equal(t, "2024-01-15", rec.CertificateDate)
}

func TestExtractorCWithoutDocumentReference(t *testing.T) {
	// When the line after the buffered one is already a bare 15-digit NPWP,
	// the buffered line belongs to the prior-document group instead.
	text := strings.Join([]string{
		"Bukti Pemotongan ini.",
		" BP - 03 / 2024 / 00046 ",
		"A. IDENTITAS PENERIMA",
		"NPWP / NIK",
		"Nama",
		"B. PPh YANG DIPOTONG",
		"24-104 2% 10.000.000 200.000",
		"B.8 Dasar Pemotongan",
		"SKB/2024/777   12122023",
		" 123456789012345 ",
		" 15012024 ",
	}, "\n")

	rec := extractC(text)

	assert.Empty(t, rec.SupportingDocuments)
	assert.Equal(t, []string{"SKB/2024/777   ", "2023-12-12"}, rec.PriorDocuments)
	assert.Equal(t, "123456789012345", rec.TaxpayerID)
	assert.Equal(t, "2024-01-15", rec.CertificateDate)
}

func TestExtractorCMissingAnchor(t *testing.T) {
	assert.Equal(t, &Record{}, extractC("FORMULIR BPBS\nH.1\nNOMOR\nnothing else"))
}

func TestExtractorCHaltsOnExhaustedInput(t *testing.T) {
	text := strings.Join([]string{
		"Bukti Pemotongan ini.",
		" BP - 03 / 2024 / 00047 ",
		"x",
	}, "\n")

	rec := extractC(text)
	assert.Equal(t, "BP-03/2024/00047", rec.CertificateNumber)
	assert.Empty(t, rec.AmountRef1)
	assert.Empty(t, rec.TaxpayerID)
}

func TestExtractorCIdempotent(t *testing.T) {
	assert.Equal(t, extractC(layoutCText), extractC(layoutCText))
}

func TestSplitAmountRefsC(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantRef1 string
		wantRef2 string
	}{
		{
			name:     "dash_anchored_row",
			line:     "24-104 2% 10.000.000 200.000",
			wantRef1: "24-104 ",
			wantRef2: "2% 10.000",
		},
		{
			name:     "no_dash",
			line:     "24104 2% 10.000.000",
			wantRef1: "",
			wantRef2: "",
		},
		{
			name:     "too_short_after_dash",
			line:     "24-10",
			wantRef1: "",
			wantRef2: "",
		},
		{
			name:     "first_span_only",
			line:     "24-104 2%",
			wantRef1: "24-104 ",
			wantRef2: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref1, ref2 := splitAmountRefsC(tt.line)
			assert.Equal(t, tt.wantRef1, ref1)
			assert.Equal(t, tt.wantRef2, ref2)
		})
	}
}
