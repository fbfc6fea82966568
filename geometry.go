package gobadge

import (
	"fmt"
	"image"
)

// A4 page size in points, the unit every output page is written at.
const (
	A4Width  = 595
	A4Height = 842
)

// Default page padding, as fractions of the page width and height.
const (
	DefaultPadX = 0.04706
	DefaultPadY = 0.02376
)

// Grid dimensions. Pages always hold a 3x3 grid of badges.
const (
	GridRows      = 3
	GridCols      = 3
	BadgesPerPage = GridRows * GridCols
)

// Size is a pixel size.
type Size struct {
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

// Pt converts the size to an image.Point.
func (s Size) Pt() image.Point { return image.Pt(s.W, s.H) }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Geometry describes a page raster and the badges tiled on it.
// Badge and page size are independent inputs; PadX and PadY place the top
// left corner of the grid.
type Geometry struct {
	Page  Size
	Badge Size
	PadX  float64 // fraction of page width
	PadY  float64 // fraction of page height
}

// A4Geometry derives a page raster of scale pixels per point and the largest
// badge that fits three across and three down inside the default padding.
func A4Geometry(scale int) Geometry {
	page := Size{W: A4Width * scale, H: A4Height * scale}
	return Geometry{
		Page: page,
		Badge: Size{
			W: int((1 - 2*DefaultPadX) * float64(page.W) / GridCols),
			H: int((1 - 2*DefaultPadY) * float64(page.H) / GridRows),
		},
		PadX: DefaultPadX,
		PadY: DefaultPadY,
	}
}

// Padding returns the pixel offset of the grid's top left corner.
func (g Geometry) Padding() image.Point {
	return image.Pt(int(float64(g.Page.W)*g.PadX), int(float64(g.Page.H)*g.PadY))
}

// Cell returns the top left pixel of grid cell i in row-major order.
func (g Geometry) Cell(i int) image.Point {
	pad := g.Padding()
	row, col := i/GridCols, i%GridCols
	return image.Pt(pad.X+col*g.Badge.W, pad.Y+row*g.Badge.H)
}

// Validate reports ErrLayout when the grid plus its padding on both sides
// overflows the page, or when a size is not positive.
func (g Geometry) Validate() error {
	if g.Page.W <= 0 || g.Page.H <= 0 || g.Badge.W <= 0 || g.Badge.H <= 0 {
		return &Error{Op: "Geometry", Kind: ErrLayout,
			Err: fmt.Errorf("page %v and badge %v must be positive", g.Page, g.Badge)}
	}
	if g.PadX < 0 || g.PadY < 0 {
		return &Error{Op: "Geometry", Kind: ErrLayout,
			Err: fmt.Errorf("negative padding %g, %g", g.PadX, g.PadY)}
	}
	pad := g.Padding()
	if w := 2*pad.X + GridCols*g.Badge.W; w > g.Page.W {
		return &Error{Op: "Geometry", Kind: ErrLayout,
			Err: fmt.Errorf("grid width %d exceeds page width %d", w, g.Page.W)}
	}
	if h := 2*pad.Y + GridRows*g.Badge.H; h > g.Page.H {
		return &Error{Op: "Geometry", Kind: ErrLayout,
			Err: fmt.Errorf("grid height %d exceeds page height %d", h, g.Page.H)}
	}
	return nil
}
