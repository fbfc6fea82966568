package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lvillar/gobadge"
)

// TextLine places one string on a badge. Every field is a fraction of the
// badge width (X, Width) or height (Y, Font) so a layout measured on one
// template size scales linearly to any badge size.
type TextLine struct {
	X     float64 // left edge of the centring box
	Width float64 // width of the centring box
	Y     float64 // top of the text
	Font  float64 // starting font size

	// Fixed draws at the starting size instead of fitting the box.
	Fixed bool
	// Color overrides the configured text colour when non-nil.
	Color color.Color
}

// Box is a TextLine resolved to pixels for one badge size.
type Box struct {
	X, Y  int
	Width int
	Font  int // starting font size in pixels
}

// Resolve converts the line's ratios to pixel offsets for size.
func (l TextLine) Resolve(size gobadge.Size) Box {
	return Box{
		X:     scale(size.W, l.X),
		Y:     scale(size.H, l.Y),
		Width: scale(size.W, l.Width),
		Font:  scale(size.H, l.Font),
	}
}

// FrontSpec lays out the attendee side.
type FrontSpec struct {
	Surname   TextLine
	FirstName TextLine
	Group     TextLine

	// Barcode is the area reserved for the optional check-in code. Only
	// X, Width, Y and Font (used as the height) are read.
	Barcode TextLine
}

// BackSpec lays out the hotel side.
type BackSpec struct {
	Hotel       TextLine
	Destination TextLine
	Group       TextLine

	// HotelOverride enables the per-hotel backside template lookup. A
	// pre-branded template carries the hotel name, so Hotel is not drawn
	// on it.
	HotelOverride bool
}

// Layout is the full set of ratios a Renderer uses.
type Layout struct {
	Variant gobadge.BackLayout
	Front   FrontSpec
	Back    BackSpec
}

// Reference template sizes the ratios below were measured on.
var (
	FrontReference    = gobadge.Size{W: 484, H: 724}
	LeftBackReference = gobadge.Size{W: 482, H: 722}
	// CenteredBackReference is the badge size at A4 x4, where the centred
	// hotel name was set at 108px, 184px from the top.
	CenteredBackReference = gobadge.Size{W: 718, H: 1069}
)

var (
	backTextColor  = color.RGBA{R: 0xef, G: 0xdb, B: 0xc7, A: 0xff}
	leftHotelColor = color.RGBA{R: 116, G: 87, B: 76, A: 0xff}
)

// DefaultFront is the front layout.
func DefaultFront() FrontSpec {
	const (
		padX     = 45.0
		surnameY = 476.0
		nameGap  = 40.0
	)
	w, h := float64(FrontReference.W), float64(FrontReference.H)
	column := TextLine{X: padX / w, Width: (w - 2*padX) / w}

	surname := column
	surname.Y, surname.Font = surnameY/h, 0.06
	first := column
	first.Y, first.Font = (surnameY+nameGap)/h, 0.06
	group := column
	group.Y, group.Font = 0.92, 0.045
	code := column
	code.Y, code.Font = 0.78, 0.12

	return FrontSpec{Surname: surname, FirstName: first, Group: group, Barcode: code}
}

// CenteredBack centres destination and group across the whole badge and
// draws the hotel name at a fixed size unless a per-hotel template exists.
func CenteredBack() BackSpec {
	h := float64(CenteredBackReference.H)
	return BackSpec{
		Hotel: TextLine{
			Width: 1, Y: 184 / h, Font: 108 / h,
			Fixed: true, Color: color.White,
		},
		Destination:   TextLine{Width: 1, Y: 0.02, Font: 0.045, Color: backTextColor},
		Group:         TextLine{Width: 1, Y: 0.92, Font: 0.045, Color: backTextColor},
		HotelOverride: true,
	}
}

// LeftAlignedBack fits all three lines inside a column offset from the left
// edge, always drawing the hotel name.
func LeftAlignedBack() BackSpec {
	w, h := float64(LeftBackReference.W), float64(LeftBackReference.H)
	width := 374 / w
	return BackSpec{
		Hotel:       TextLine{X: 54 / w, Width: width, Y: 98 / h, Font: 0.065, Color: leftHotelColor},
		Destination: TextLine{X: 54 / w, Width: width, Y: 8 / h, Font: 0.045},
		Group:       TextLine{X: 45 / w, Width: width, Y: 0.92, Font: 0.045},
	}
}

// LayoutFor returns the layout for the given backside variant.
func LayoutFor(v gobadge.BackLayout) (Layout, error) {
	l := Layout{Variant: v, Front: DefaultFront()}
	switch v {
	case gobadge.BackCentered:
		l.Back = CenteredBack()
	case gobadge.BackLeftAligned:
		l.Back = LeftAlignedBack()
	default:
		return Layout{}, gobadge.PreconditionError("LayoutFor", fmt.Errorf("unknown back layout %v", v))
	}
	return l, nil
}

// scale returns floor(n * r). The small bias keeps ratios such as 108/1069
// from landing a hair below the integer they were derived from.
func scale(n int, r float64) int {
	return int(math.Floor(float64(n)*r + 1e-9))
}

// centre returns the left edge that centres width inside box.
func centre(box Box, width int) int {
	d := box.Width - width
	if d < 0 && d%2 != 0 {
		return box.X + d/2 - 1
	}
	return box.X + d/2
}
