// Package fontfit picks the largest font size at which a string fits a
// horizontal pixel budget.
//
// Sizes are in pixels (the font is rasterised at 72 DPI, so one point is
// one pixel). The search scans downward one pixel at a time from a starting
// size derived from a reference height; it never assumes that rendered width
// is strictly monotonic in size.
package fontfit

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/lvillar/gobadge"
)

// MinSize is the smallest font size Fit will try.
const MinSize = 1

// Fitter measures text with a single outline font. Faces are cached per
// size. A Fitter is not safe for concurrent use.
type Fitter struct {
	path  string
	font  *opentype.Font
	faces map[int]font.Face
}

// Fit is the outcome of a successful fit.
type Fit struct {
	Face  font.Face
	Size  int // font size in pixels
	Width int // measured width of the text at Size
}

// Load reads and parses the font file at path.
func Load(path string) (*Fitter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gobadge.AssetError("LoadFont", path, err)
	}
	return parse(path, data)
}

// New parses an in-memory TrueType or OpenType font.
func New(data []byte) (*Fitter, error) {
	return parse("", data)
}

func parse(path string, data []byte) (*Fitter, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, gobadge.AssetError("LoadFont", path, err)
	}
	return &Fitter{path: path, font: fnt, faces: make(map[int]font.Face)}, nil
}

// Face returns the face for the given pixel size.
func (f *Fitter) Face(size int) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	if size < MinSize {
		return nil, &gobadge.Error{Op: "Face", Kind: gobadge.ErrFontTooSmall,
			Err: fmt.Errorf("font size %d below minimum %d", size, MinSize)}
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, gobadge.AssetError("Face", f.path, err)
	}
	f.faces[size] = face
	return face, nil
}

// Measure returns the width in pixels of text drawn at size, from the pen
// origin to the right edge of the inked area.
func (f *Fitter) Measure(text string, size int) (int, error) {
	face, err := f.Face(size)
	if err != nil {
		return 0, err
	}
	return Width(face, text), nil
}

// Width measures text with an existing face.
func Width(face font.Face, text string) int {
	if text == "" {
		return 0
	}
	bounds, _ := font.BoundString(face, text)
	return max(bounds.Max.X.Ceil(), 0)
}

// StartSize is the first size Fit tries: floor(refHeight * ratio), tolerant
// of ratios that round to just below an integer.
func StartSize(refHeight int, ratio float64) int {
	return int(math.Floor(float64(refHeight)*ratio + 1e-9))
}

// Fit returns the largest size, starting at StartSize(refHeight, startRatio)
// and scanning down, at which text is no wider than maxWidth.
//
// If text already fits at the starting size that size is returned unchanged.
// If it does not fit even at MinSize, Fit fails with ErrFontTooSmall.
func (f *Fitter) Fit(text string, maxWidth int, startRatio float64, refHeight int) (Fit, error) {
	size := StartSize(refHeight, startRatio)
	if size < MinSize {
		return Fit{}, &gobadge.Error{Op: "Fit", Kind: gobadge.ErrFontTooSmall,
			Err: fmt.Errorf("start size %d (height %d x %g) below minimum %d", size, refHeight, startRatio, MinSize)}
	}
	for {
		face, err := f.Face(size)
		if err != nil {
			return Fit{}, err
		}
		w := Width(face, text)
		if w <= maxWidth {
			return Fit{Face: face, Size: size, Width: w}, nil
		}
		if size <= MinSize {
			return Fit{}, &gobadge.Error{Op: "Fit", Kind: gobadge.ErrFontTooSmall,
				Err: fmt.Errorf("%q is %dpx wide at size %d, budget %dpx", text, w, size, maxWidth)}
		}
		size--
	}
}
