// Package pageops post-processes finished badge documents: merging the PDFs
// of several groups into one print file and reporting page geometry.
//
// It uses pdfcpu to read page counts and dimensions and the gofpdi contrib
// package to import pages as templates into new PDF documents.
//
// A badge document alternates front and back pages, so a well-formed one
// always has an even page count.
package pageops

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"

	"github.com/lvillar/gobadge"
)

// newDocument returns an empty point-based document for imported pages.
func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// writePDF writes the PDF to a writer.
func writePDF(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return gobadge.IOError("Output", "", err)
	}
	return nil
}

// writePDFToFile writes the PDF to a file, removing it again if the write
// fails part way.
func writePDFToFile(pdf *fpdf.Fpdf, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return gobadge.IOError("Output", filename, err)
	}
	if err := pdf.Output(f); err != nil {
		f.Close()
		os.Remove(filename)
		return gobadge.IOError("Output", filename, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filename)
		return gobadge.IOError("Output", filename, fmt.Errorf("closing: %w", err))
	}
	return nil
}
