package render

import (
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/lvillar/gobadge"
)

// TemplateCache decodes each template once per badge size and hands out
// private copies, so drawing on one badge never touches another.
// Entries are keyed by path and badge size.
type TemplateCache struct {
	resized map[string]*image.NRGBA
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{resized: make(map[string]*image.NRGBA)}
}

// Load returns a fresh RGBA copy of the template at path, stretched to
// exactly size. The aspect ratio is not preserved.
func (c *TemplateCache) Load(path string, size gobadge.Size) (*image.RGBA, error) {
	key := path + "@" + size.String()
	src, ok := c.resized[key]
	if !ok {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, gobadge.AssetError("LoadTemplate", path, err)
		}
		src = imaging.Resize(img, size.W, size.H, imaging.CatmullRom)
		c.resized[key] = src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst, nil
}

// HotelTemplate looks for the pre-branded backside "<hotel>.png" in dir.
// It reports false when dir is empty, the hotel name is empty or contains a
// path separator, or no such file exists.
func HotelTemplate(dir, hotel string) (string, bool, error) {
	if dir == "" || hotel == "" || strings.ContainsAny(hotel, `/\`) {
		return "", false, nil
	}
	path := filepath.Join(dir, hotel+".png")
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return path, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", false, nil
	}
	return "", false, gobadge.AssetError("HotelTemplate", path, err)
}
