package pageops

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	"github.com/lvillar/gobadge"
)

// MergeFiles combines several badge documents into a single output file.
// Pages are added in order: all pages of the first file, then all of the
// second, and so on, keeping each page's own size. Every input must have an
// even number of pages so front and back pages stay paired for duplex
// printing.
func MergeFiles(outputPath string, inputPaths ...string) error {
	pdf, err := buildMerged(inputPaths)
	if err != nil {
		return err
	}
	return writePDFToFile(pdf, outputPath)
}

// Merge combines several badge documents and writes the result to w.
func Merge(w io.Writer, inputPaths ...string) error {
	pdf, err := buildMerged(inputPaths)
	if err != nil {
		return err
	}
	return writePDF(pdf, w)
}

func buildMerged(inputPaths []string) (*fpdf.Fpdf, error) {
	if len(inputPaths) == 0 {
		return nil, gobadge.PreconditionError("Merge", fmt.Errorf("pageops: no input files provided"))
	}

	pdf := newDocument()
	for _, inputPath := range inputPaths {
		if err := appendFile(pdf, inputPath); err != nil {
			return nil, fmt.Errorf("pageops: merging %s: %w", inputPath, err)
		}
	}
	return pdf, nil
}

// appendFile imports every page of a badge document into pdf. The input
// must hold whole front/back sheets, so an odd page count is rejected
// before anything is imported.
func appendFile(pdf *fpdf.Fpdf, inputPath string) error {
	report, err := Inspect(inputPath)
	if err != nil {
		return err
	}
	if n := len(report.Pages); n == 0 || n%2 != 0 {
		return gobadge.PreconditionError("Merge",
			fmt.Errorf("%s has %d pages, want whole front/back sheets", inputPath, n))
	}

	imp := gofpdi.NewImporter()
	for i, size := range report.Pages {
		tpl := imp.ImportPage(pdf, inputPath, i+1, "/MediaBox")
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.Width, Ht: size.Height})
		imp.UseImportedTemplate(pdf, tpl, 0, 0, size.Width, size.Height)
		if pdf.Err() {
			return fmt.Errorf("page %d: %w", i+1, pdf.Error())
		}
	}
	return nil
}
