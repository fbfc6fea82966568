package pageops

import (
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/lvillar/gobadge"
)

// PageSize is a page's width and height in points.
type PageSize struct {
	Width  float64
	Height float64
}

// IsA4 reports whether the page is 595x842 points, give or take half a
// point.
func (s PageSize) IsA4() bool {
	return math.Abs(s.Width-gobadge.A4Width) < 0.5 && math.Abs(s.Height-gobadge.A4Height) < 0.5
}

// Report describes a produced badge document.
type Report struct {
	Pages []PageSize
}

// Sheets is the number of front/back page pairs.
func (r Report) Sheets() int { return len(r.Pages) / 2 }

// AllA4 reports whether every page is A4.
func (r Report) AllA4() bool {
	for _, p := range r.Pages {
		if !p.IsA4() {
			return false
		}
	}
	return true
}

// Inspect reads the page count and page dimensions of the PDF at path.
func Inspect(path string) (Report, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return Report{}, gobadge.AssetError("Inspect", path, err)
	}
	r := Report{Pages: make([]PageSize, len(dims))}
	for i, d := range dims {
		r.Pages[i] = PageSize{Width: d.Width, Height: d.Height}
	}
	return r, nil
}

func (r Report) String() string {
	return fmt.Sprintf("%d pages (%d sheets), A4: %v", len(r.Pages), r.Sheets(), r.AllA4())
}
