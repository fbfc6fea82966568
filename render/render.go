// Package render draws front and back badges.
//
// A front badge is the gender-specific template overlaid with the attendee's
// surname, first name and group, each fitted to a padded column and centred
// in it. A back badge carries the hotel name, destination and group; its
// arrangement is chosen by gobadge.BackLayout.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"

	"github.com/lvillar/gobadge"
	"github.com/lvillar/gobadge/fontfit"
)

// Backside holds the text shared by every back badge of a run.
type Backside struct {
	Group       string
	Hotel       string
	Destination string
}

// Renderer draws badges of one fixed size. It is not safe for concurrent use.
type Renderer struct {
	size      gobadge.Size
	color     color.RGBA
	templates gobadge.Templates
	barcode   gobadge.BarcodeKind
	layout    Layout

	fitter *fontfit.Fitter
	cache  *TemplateCache
}

// New returns a renderer for cfg that measures and draws text with fitter.
func New(cfg gobadge.Config, fitter *fontfit.Fitter) (*Renderer, error) {
	layout, err := LayoutFor(cfg.BackLayout)
	if err != nil {
		return nil, err
	}
	if cfg.Geometry.Badge.W <= 0 || cfg.Geometry.Badge.H <= 0 {
		return nil, gobadge.PreconditionError("NewRenderer", fmt.Errorf("badge size %v must be positive", cfg.Geometry.Badge))
	}
	return &Renderer{
		size:      cfg.Geometry.Badge,
		color:     cfg.TextColor,
		templates: cfg.Templates,
		barcode:   cfg.Barcode,
		layout:    layout,
		fitter:    fitter,
		cache:     NewTemplateCache(),
	}, nil
}

// Layout reports the layout in use, including the active backside variant.
func (r *Renderer) Layout() Layout { return r.layout }

// Size is the pixel size of every badge the renderer produces.
func (r *Renderer) Size() gobadge.Size { return r.size }

// RenderFront draws the attendee side of a badge.
func (r *Renderer) RenderFront(a gobadge.Attendee, group string) (*image.RGBA, error) {
	surname, firstName, err := a.SplitName()
	if err != nil {
		return nil, err
	}
	img, err := r.cache.Load(r.templates.For(a.Gender), r.size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForRGBA(img)
	spec := r.layout.Front
	lines := []struct {
		line TextLine
		text string
	}{
		{spec.Surname, surname},
		{spec.FirstName, firstName},
		{spec.Group, group},
	}
	for _, l := range lines {
		if err := r.drawLine(dc, l.line, l.text); err != nil {
			return nil, &gobadge.Error{Op: "RenderFront", Err: fmt.Errorf("%q: %w", a.Name, err)}
		}
	}

	if r.barcode != gobadge.BarcodeNone {
		if err := r.drawBarcode(img, spec.Barcode, CheckInCode(group, surname, firstName)); err != nil {
			return nil, &gobadge.Error{Op: "RenderFront", Kind: gobadge.ErrPrecondition,
				Err: fmt.Errorf("%q: %w", a.Name, err)}
		}
	}
	return img, nil
}

// RenderBack draws the hotel side of a badge.
//
// When the layout allows it and "<hotel>.png" exists in the hotel template
// directory, that template is used as is and the hotel name is not drawn.
// A file that exists but cannot be decoded is an asset error; there is no
// fallback to the default template.
func (r *Renderer) RenderBack(b Backside) (*image.RGBA, error) {
	spec := r.layout.Back
	path, drawHotel := r.templates.Back, true
	if spec.HotelOverride {
		override, ok, err := HotelTemplate(r.templates.HotelDir, b.Hotel)
		if err != nil {
			return nil, err
		}
		if ok {
			path, drawHotel = override, false
		}
	}

	img, err := r.cache.Load(path, r.size)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForRGBA(img)
	if drawHotel {
		if err := r.drawLine(dc, spec.Hotel, b.Hotel); err != nil {
			return nil, &gobadge.Error{Op: "RenderBack", Err: err}
		}
	}
	if err := r.drawLine(dc, spec.Destination, b.Destination); err != nil {
		return nil, &gobadge.Error{Op: "RenderBack", Err: err}
	}
	if err := r.drawLine(dc, spec.Group, b.Group); err != nil {
		return nil, &gobadge.Error{Op: "RenderBack", Err: err}
	}
	return img, nil
}

// Placement is where a line of text lands on a badge.
type Placement struct {
	X, Y  int // pen origin at the top of the text
	Size  int // font size in pixels
	Width int // measured text width
	Face  font.Face
}

// Place fits text into line for the renderer's badge size and centres it.
// Fixed lines keep their starting size even if they overflow the box.
func (r *Renderer) Place(line TextLine, text string) (Placement, error) {
	text = norm.NFC.String(text)
	box := line.Resolve(r.size)

	var p Placement
	if line.Fixed {
		face, err := r.fitter.Face(box.Font)
		if err != nil {
			return Placement{}, err
		}
		p = Placement{Size: box.Font, Width: fontfit.Width(face, text), Face: face}
	} else {
		fit, err := r.fitter.Fit(text, box.Width, line.Font, r.size.H)
		if err != nil {
			return Placement{}, err
		}
		p = Placement{Size: fit.Size, Width: fit.Width, Face: fit.Face}
	}
	p.X = centre(box, p.Width)
	p.Y = box.Y
	return p, nil
}

func (r *Renderer) drawLine(dc *gg.Context, line TextLine, text string) error {
	text = norm.NFC.String(text)
	if text == "" {
		return nil
	}
	p, err := r.Place(line, text)
	if err != nil {
		return err
	}
	var c color.Color = r.color
	if line.Color != nil {
		c = line.Color
	}
	ascent := float64(p.Face.Metrics().Ascent) / 64
	dc.SetFontFace(p.Face)
	dc.SetColor(c)
	dc.DrawString(text, float64(p.X), float64(p.Y)+ascent)
	return nil
}

func (r *Renderer) drawBarcode(img *image.RGBA, area TextLine, content string) error {
	box := area.Resolve(r.size)
	code, err := encodeBarcode(r.barcode, content, box.Width, box.Font)
	if err != nil {
		return err
	}
	b := code.Bounds()
	x := centre(box, b.Dx())
	dst := image.Rect(x, box.Y, x+b.Dx(), box.Y+b.Dy())
	draw.Draw(img, dst, code, b.Min, draw.Over)
	return nil
}
