// Package sheet tiles badges onto page rasters.
//
// A page is an opaque white canvas holding a fixed 3x3 grid. The grid's top
// left corner sits at the page padding; cells follow each other with no
// gutter, so badge i lands at padding + (i%3*badgeW, i/3*badgeH).
package sheet

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/lvillar/gobadge"
)

// Compositor places badges of one size onto pages of one size.
type Compositor struct {
	geom gobadge.Geometry
}

// New validates g and returns a compositor for it. It fails with
// gobadge.ErrLayout if the grid and its padding overflow the page.
func New(g gobadge.Geometry) (*Compositor, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Compositor{geom: g}, nil
}

// Geometry returns the page and badge sizes in use.
func (c *Compositor) Geometry() gobadge.Geometry { return c.geom }

// Blank returns an opaque white placeholder badge.
func (c *Compositor) Blank() image.Image {
	return imaging.New(c.geom.Badge.W, c.geom.Badge.H, color.White)
}

// Compose pastes badges onto a new white page in row-major order, using each
// badge's alpha channel as the mask. Badges past the ninth are ignored.
// Every badge must be exactly the configured badge size.
func (c *Compositor) Compose(badges []image.Image) (*image.RGBA, error) {
	page := image.NewRGBA(image.Rect(0, 0, c.geom.Page.W, c.geom.Page.H))
	draw.Draw(page, page.Bounds(), image.White, image.Point{}, draw.Src)

	want := c.geom.Badge.Pt()
	for i, badge := range badges {
		if i >= gobadge.BadgesPerPage {
			break
		}
		b := badge.Bounds()
		if b.Size() != want {
			return nil, gobadge.PreconditionError("Compose",
				fmt.Errorf("badge %d is %v, want %v", i, b.Size(), c.geom.Badge))
		}
		at := c.geom.Cell(i)
		draw.Draw(page, image.Rectangle{Min: at, Max: at.Add(want)}, badge, b.Min, draw.Over)
	}
	return page, nil
}
