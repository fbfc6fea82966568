// Package assemble writes page rasters into a single PDF, one A4 page per
// raster, each image stretched over the full page with no margin.
//
// Output is reproducible: the document dates are fixed, the internal
// catalogs are sorted and images are embedded in first-use order, so the
// same pages always yield the same bytes. Identical pages, such as the back
// pages of a run, share one embedded image.
package assemble

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/disintegration/imaging"

	"github.com/lvillar/gobadge"
)

// ErrNoPages is returned when a document with no pages is written.
var ErrNoPages = errors.New("assemble: document has no pages")

// documentDate is stamped as both creation and modification date.
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Assembler accumulates pages. Each page is PNG-encoded as soon as it is
// added, so the caller may discard the raster immediately.
type Assembler struct {
	pdf    *fpdf.Fpdf
	pages  int
	images map[[sha256.Size]byte]pageImage
	width  int // pixel width of the last registered image
}

// pageImage is an embedded page raster. Scale is the drawn width relative
// to the page width; it exceeds 1 when the raster was extended past the
// right edge of the page.
type pageImage struct {
	name  string
	scale float64
}

// New returns an empty document with A4 pages measured in points.
func New() *Assembler {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: gobadge.A4Width, Ht: gobadge.A4Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetCatalogSort(true)
	pdf.SetCreator("gobadge", true)
	return &Assembler{pdf: pdf, images: make(map[[sha256.Size]byte]pageImage)}
}

// SetTitle sets the document title shown by viewers.
func (a *Assembler) SetTitle(title string) {
	a.pdf.SetTitle(title, true)
}

// Pages returns the number of pages added so far.
func (a *Assembler) Pages() int { return a.pages }

// AddPage appends img as a new full-bleed page.
func (a *Assembler) AddPage(img image.Image) error {
	pix := imaging.Clone(img)
	if pix.Rect.Empty() {
		return gobadge.PreconditionError("AddPage", fmt.Errorf("page %d is empty", a.pages+1))
	}

	key := digest(pix)
	im, ok := a.images[key]
	if !ok {
		var err error
		if im, err = a.register(pix); err != nil {
			return err
		}
		a.images[key] = im
	}

	a.pdf.AddPage()
	a.pdf.ImageOptions(im.name, 0, 0, gobadge.A4Width*im.scale, gobadge.A4Height,
		false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	if a.pdf.Err() {
		return gobadge.IOError("AddPage", "", fmt.Errorf("page %d: %w", a.pages+1, a.pdf.Error()))
	}
	a.pages++
	return nil
}

// register embeds pix as a new image.
//
// fpdf writes images sorted by pixel width alone, so every registered image
// is wider than the one before: pix is extended with white columns that
// fall past the right edge of the page. Image objects then appear in
// first-use order.
func (a *Assembler) register(pix *image.NRGBA) (pageImage, error) {
	w, h := pix.Rect.Dx(), pix.Rect.Dy()
	width := max(w, a.width+1)

	var src image.Image = pix
	if width > w {
		src = imaging.Paste(imaging.New(width, h, color.White), pix, image.Pt(0, 0))
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return pageImage{}, gobadge.IOError("AddPage", "", fmt.Errorf("encoding page %d: %w", a.pages+1, err))
	}

	im := pageImage{name: fmt.Sprintf("page-%d", len(a.images)), scale: float64(width) / float64(w)}
	a.pdf.RegisterImageOptionsReader(im.name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if a.pdf.Err() {
		return pageImage{}, gobadge.IOError("AddPage", "", fmt.Errorf("page %d: %w", a.pages+1, a.pdf.Error()))
	}
	a.width = width
	return im, nil
}

// digest identifies a raster by its size and pixels.
func digest(pix *image.NRGBA) [sha256.Size]byte {
	h := sha256.New()
	fmt.Fprintf(h, "%dx%d:", pix.Rect.Dx(), pix.Rect.Dy())
	h.Write(pix.Pix)
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Output writes the finished document to w. It can be called only once.
func (a *Assembler) Output(w io.Writer) error {
	if a.pages == 0 {
		return gobadge.IOError("Output", "", ErrNoPages)
	}
	if err := a.pdf.Output(w); err != nil {
		return gobadge.IOError("Output", "", err)
	}
	return nil
}

// WriteFile writes the document to path. The bytes go to a temporary file
// in the same directory which is renamed over path only once complete; on
// failure the temporary file is removed and path is left untouched.
func (a *Assembler) WriteFile(path string) (err error) {
	if a.pages == 0 {
		return gobadge.IOError("WriteFile", path, ErrNoPages)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return gobadge.IOError("WriteFile", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := a.pdf.Output(tmp); err != nil {
		return gobadge.IOError("WriteFile", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return gobadge.IOError("WriteFile", path, err)
	}
	if err := tmp.Close(); err != nil {
		return gobadge.IOError("WriteFile", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return gobadge.IOError("WriteFile", path, err)
	}
	return nil
}

// Assemble writes pages, in order, to a PDF at outputPath.
func Assemble(pages []image.Image, outputPath string) error {
	a := New()
	for _, p := range pages {
		if err := a.AddPage(p); err != nil {
			return err
		}
	}
	return a.WriteFile(outputPath)
}
