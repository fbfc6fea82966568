package gobadge

import (
	"fmt"
	"image/color"
	"strings"
)

// BackLayout selects how the backside of a badge is laid out.
type BackLayout int

const (
	// BackCentered centres destination and group across the full badge
	// width. The hotel name is drawn only when no per-hotel backside
	// template exists.
	BackCentered BackLayout = iota
	// BackLeftAligned places hotel, destination and group inside a padded
	// column measured from the left edge and always draws the hotel name.
	BackLeftAligned
)

func (l BackLayout) String() string {
	switch l {
	case BackCentered:
		return "centered"
	case BackLeftAligned:
		return "left"
	}
	return fmt.Sprintf("BackLayout(%d)", int(l))
}

// ParseBackLayout maps "centered" or "left" to a BackLayout.
func ParseBackLayout(s string) (BackLayout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "centered", "center":
		return BackCentered, nil
	case "left", "left-aligned":
		return BackLeftAligned, nil
	}
	return 0, PreconditionError("ParseBackLayout", fmt.Errorf("unknown back layout %q", s))
}

// BarcodeKind selects the optional check-in code printed on front badges.
type BarcodeKind int

const (
	BarcodeNone BarcodeKind = iota
	BarcodeQR
	BarcodeCode128
	BarcodePDF417
)

func (k BarcodeKind) String() string {
	switch k {
	case BarcodeNone:
		return "none"
	case BarcodeQR:
		return "qr"
	case BarcodeCode128:
		return "code128"
	case BarcodePDF417:
		return "pdf417"
	}
	return fmt.Sprintf("BarcodeKind(%d)", int(k))
}

// ParseBarcodeKind maps "none", "qr", "code128" or "pdf417" to a BarcodeKind.
func ParseBarcodeKind(s string) (BarcodeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BarcodeNone, nil
	case "qr":
		return BarcodeQR, nil
	case "code128":
		return BarcodeCode128, nil
	case "pdf417":
		return BarcodePDF417, nil
	}
	return 0, PreconditionError("ParseBarcodeKind", fmt.Errorf("unknown barcode kind %q", s))
}

// Templates names the raster files badges are drawn on.
type Templates struct {
	Male   string // front template for Gender M
	Female string // front template for Gender F
	Back   string // default backside template

	// HotelDir is searched for "<hotel>.png", a pre-branded backside used
	// instead of Back. Empty disables the lookup.
	HotelDir string
}

// For returns the front template path for g.
func (t Templates) For(g Gender) string {
	if g == Male {
		return t.Male
	}
	return t.Female
}

// Config holds everything one badge run needs. Build it with NewConfig.
type Config struct {
	Group       string
	Hotel       string
	Destination string

	Geometry   Geometry
	TextColor  color.RGBA
	FontPath   string
	OutputPath string
	Templates  Templates
	BackLayout BackLayout
	Barcode    BarcodeKind
}

// Option is a functional option for configuring a run via NewConfig.
type Option func(*Config)

// WithGroup sets the group label printed on both sides.
func WithGroup(group string) Option {
	return func(c *Config) {
		c.Group = group
	}
}

// WithHotel sets the hotel name for the backside.
func WithHotel(hotel string) Option {
	return func(c *Config) {
		c.Hotel = hotel
	}
}

// WithDestination sets the destination printed on the backside.
func WithDestination(destination string) Option {
	return func(c *Config) {
		c.Destination = destination
	}
}

// WithTextColor sets the colour of attendee text.
func WithTextColor(r, g, b uint8) Option {
	return func(c *Config) {
		c.TextColor = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
}

// WithGeometry sets page and badge sizes and the grid padding.
func WithGeometry(g Geometry) Option {
	return func(c *Config) {
		c.Geometry = g
	}
}

// WithFont sets the outline font file used for all text.
func WithFont(path string) Option {
	return func(c *Config) {
		c.FontPath = path
	}
}

// WithTemplates sets the template files.
func WithTemplates(t Templates) Option {
	return func(c *Config) {
		c.Templates = t
	}
}

// WithBackLayout selects the backside layout.
func WithBackLayout(l BackLayout) Option {
	return func(c *Config) {
		c.BackLayout = l
	}
}

// WithBarcode enables a check-in code on front badges.
func WithBarcode(k BarcodeKind) Option {
	return func(c *Config) {
		c.Barcode = k
	}
}

// WithOutput sets the path of the produced PDF.
func WithOutput(path string) Option {
	return func(c *Config) {
		c.OutputPath = path
	}
}

// NewConfig returns a configuration with defaults overridden by opts.
// Without options it describes A4 pages at four pixels per point, the
// templates M.png, F.png and backside.png in the working directory, the font
// Unbounded-Bold.ttf and output badges.pdf.
//
// Example:
//
//	cfg := gobadge.NewConfig(
//	    gobadge.WithGroup("GROUP 152"),
//	    gobadge.WithHotel("Al-Ebaa"),
//	    gobadge.WithDestination("MAKKAH"),
//	)
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Geometry:  A4Geometry(4),
		TextColor: color.RGBA{R: 239, G: 219, B: 199, A: 0xff},
		FontPath:  "Unbounded-Bold.ttf",
		Templates: Templates{
			Male:     "M.png",
			Female:   "F.png",
			Back:     "backside.png",
			HotelDir: ".",
		},
		OutputPath: "badges.pdf",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
