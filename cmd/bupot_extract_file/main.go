// Command bupot_extract_file extracts certificate fields from a single PDF
// and prints them to stdout. Useful for batch scripts and for checking how a
// certificate linearizes without running the MCP or HTTP server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pajakio/bupot-extract/internal/bupot"
	"github.com/pajakio/bupot-extract/internal/extract"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	showText     = flag.Bool("show-text", false, "Print the linearized document text instead of extracting")
	maxFileSize  = flag.Int64("max-file-size", 25*1024*1024, "Maximum PDF size in bytes")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath := flag.Arg(0)
	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", absPath)
		os.Exit(1)
	}

	service := extract.NewService(*maxFileSize)

	if *showText {
		if err := printLinearizedText(service, absPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading PDF: %v\n", err)
			os.Exit(1)
		}
		return
	}

	result, err := service.ExtractFile(extract.ExtractFileRequest{Path: absPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting certificate: %v\n", err)
		os.Exit(1)
	}

	if err := outputResults(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("bupot_extract_file - Extract withholding-tax certificate fields from a PDF")
	fmt.Println()
	fmt.Println("Reads an Indonesian withholding-tax certificate (bukti pemotongan),")
	fmt.Println("detects its layout and prints the extracted fields.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format         Output format: text (default), json")
	fmt.Println("  -show-text      Print the linearized document text instead of extracting")
	fmt.Println("  -max-file-size  Maximum PDF size in bytes (default 25MB)")
	fmt.Println("  -help           Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  bupot_extract_file certificate.pdf")
	fmt.Println("  bupot_extract_file -format json certificate.pdf")
	fmt.Println("  bupot_extract_file -show-text certificate.pdf")
	fmt.Println()
	fmt.Println("FORMATS:")
	fmt.Println("  A, B, C  Recognized certificate layouts")
	fmt.Println("  Z        Document contains no extractable text")
	fmt.Println("  U        Document does not match any known layout")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  bupot_extract_file [OPTIONS] <pdf_file>")
}

func printLinearizedText(service *extract.Service, path string) error {
	text, err := service.LinearizeFile(path)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func outputResults(result *extract.ExtractResult) error {
	switch *outputFormat {
	case "json":
		return outputJSON(result)
	case "text":
		return outputText(result)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputJSON(result *extract.ExtractResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *extract.ExtractResult) error {
	fmt.Printf("File: %s\n", result.Path)
	fmt.Printf("Format: %s\n", result.Format)
	fmt.Printf("Pages: %d\n", result.Pages)
	fmt.Printf("Size: %d bytes\n", result.Size)
	fmt.Println()

	switch result.Format {
	case "U":
		fmt.Println("The document does not match any known certificate layout.")
		return nil
	case "Z":
		fmt.Println("The document contains no extractable text.")
		return nil
	}

	printRecord(result.Record)
	return nil
}

func printRecord(rec *bupot.Record) {
	fmt.Printf("Certificate Number: %s\n", rec.CertificateNumber)
	fmt.Printf("Certificate Date:   %s\n", rec.CertificateDate)
	fmt.Printf("Taxpayer ID:        %s\n", rec.TaxpayerID)
	fmt.Printf("Amount Ref 1:       %s\n", rec.AmountRef1)
	fmt.Printf("Amount Ref 2:       %s\n", rec.AmountRef2)

	if len(rec.SupportingDocuments) > 0 {
		fmt.Println("Supporting Documents:")
		for _, doc := range rec.SupportingDocuments {
			fmt.Printf("  - %q\n", doc)
		}
	}
	if len(rec.PriorDocuments) > 0 {
		fmt.Println("Prior Documents:")
		for _, doc := range rec.PriorDocuments {
			fmt.Printf("  - %q\n", doc)
		}
	}
}

func init() {
	flag.Usage = printHelp
}
