// Package roster loads run files. A run file holds the settings of one badge
// run together with its attendee list, written in YAML or JSON:
//
//	group: GROUP 12
//	hotel: Hotel Aurora
//	destination: LISBON
//	output: group12.pdf
//	back_layout: centered
//	barcode: qr
//	attendees:
//	  - {name: SMITH JOHN, gender: M}
//	  - {name: GARCIA MARIA JOSE, gender: f}
//
// Relative paths are resolved against the directory of the run file.
package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lvillar/gobadge"
)

// File is the decoded form of a run file.
type File struct {
	Group       string     `yaml:"group" json:"group"`
	Hotel       string     `yaml:"hotel" json:"hotel"`
	Destination string     `yaml:"destination" json:"destination"`
	Output      string     `yaml:"output,omitempty" json:"output,omitempty"`
	Font        string     `yaml:"font,omitempty" json:"font,omitempty"`
	TextColor   []int      `yaml:"text_color,omitempty" json:"text_color,omitempty"` // r, g, b
	Templates   *Templates `yaml:"templates,omitempty" json:"templates,omitempty"`
	BackLayout  string     `yaml:"back_layout,omitempty" json:"back_layout,omitempty"` // centered (default) or left
	Barcode     string     `yaml:"barcode,omitempty" json:"barcode,omitempty"`         // none (default), qr, code128, pdf417
	Scale       int        `yaml:"scale,omitempty" json:"scale,omitempty"`             // pixels per point, default 4
	Attendees   []Entry    `yaml:"attendees" json:"attendees"`
}

// Templates overrides the default template paths. Empty fields keep the
// default.
type Templates struct {
	Male     string `yaml:"male,omitempty" json:"male,omitempty"`
	Female   string `yaml:"female,omitempty" json:"female,omitempty"`
	Back     string `yaml:"back,omitempty" json:"back,omitempty"`
	HotelDir string `yaml:"hotel_dir,omitempty" json:"hotel_dir,omitempty"`
}

// Entry is one attendee as written in the run file.
type Entry struct {
	Name   string `yaml:"name" json:"name"`
	Gender string `yaml:"gender" json:"gender"`
}

// Load reads and decodes the run file at path, resolving relative paths
// against its directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gobadge.AssetError("LoadRoster", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster: %s: %w", path, err)
	}
	f.resolve(filepath.Dir(path))
	return f, nil
}

// Parse decodes a run file. A document starting with '{' is read as JSON,
// anything else as YAML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	var err error
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&f)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty run file")
		}
		return nil, gobadge.PreconditionError("ParseRoster", err)
	}
	return &f, nil
}

func (f *File) resolve(dir string) {
	abs := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	abs(&f.Output)
	abs(&f.Font)
	if t := f.Templates; t != nil {
		abs(&t.Male)
		abs(&t.Female)
		abs(&t.Back)
		abs(&t.HotelDir)
	}
}

// People converts the attendee entries, normalising gender codes. The first
// invalid entry is reported by its 1-based position.
func (f *File) People() ([]gobadge.Attendee, error) {
	out := make([]gobadge.Attendee, 0, len(f.Attendees))
	for i, e := range f.Attendees {
		g, err := gobadge.ParseGender(e.Gender)
		if err != nil {
			return nil, fmt.Errorf("roster: attendee %d (%q): %w", i+1, e.Name, err)
		}
		a := gobadge.Attendee{Name: e.Name, Gender: g}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("roster: attendee %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Options translates the run settings into configuration options. Settings
// left empty are not emitted, so the defaults of gobadge.NewConfig apply.
func (f *File) Options() ([]gobadge.Option, error) {
	opts := []gobadge.Option{
		gobadge.WithGroup(f.Group),
		gobadge.WithHotel(f.Hotel),
		gobadge.WithDestination(f.Destination),
	}
	if f.Output != "" {
		opts = append(opts, gobadge.WithOutput(f.Output))
	}
	if f.Font != "" {
		opts = append(opts, gobadge.WithFont(f.Font))
	}
	if f.TextColor != nil {
		if len(f.TextColor) != 3 {
			return nil, gobadge.PreconditionError("RosterOptions", fmt.Errorf("text_color needs 3 components, got %d", len(f.TextColor)))
		}
		var rgb [3]uint8
		for i, c := range f.TextColor {
			if c < 0 || c > 255 {
				return nil, gobadge.PreconditionError("RosterOptions", fmt.Errorf("text_color component %d out of range", c))
			}
			rgb[i] = uint8(c)
		}
		opts = append(opts, gobadge.WithTextColor(rgb[0], rgb[1], rgb[2]))
	}
	if f.Scale != 0 {
		if f.Scale < 0 {
			return nil, gobadge.PreconditionError("RosterOptions", fmt.Errorf("scale %d must be positive", f.Scale))
		}
		opts = append(opts, gobadge.WithGeometry(gobadge.A4Geometry(f.Scale)))
	}
	if t := f.Templates; t != nil {
		opts = append(opts, withTemplates(*t))
	}

	layout, err := gobadge.ParseBackLayout(f.BackLayout)
	if err != nil {
		return nil, err
	}
	kind, err := gobadge.ParseBarcodeKind(f.Barcode)
	if err != nil {
		return nil, err
	}
	return append(opts, gobadge.WithBackLayout(layout), gobadge.WithBarcode(kind)), nil
}

// withTemplates overrides only the template paths set in t.
func withTemplates(t Templates) gobadge.Option {
	return func(c *gobadge.Config) {
		if t.Male != "" {
			c.Templates.Male = t.Male
		}
		if t.Female != "" {
			c.Templates.Female = t.Female
		}
		if t.Back != "" {
			c.Templates.Back = t.Back
		}
		if t.HotelDir != "" {
			c.Templates.HotelDir = t.HotelDir
		}
	}
}

// Config builds the run configuration, with extra applied after the run
// file's own settings.
func (f *File) Config(extra ...gobadge.Option) (gobadge.Config, error) {
	opts, err := f.Options()
	if err != nil {
		return gobadge.Config{}, err
	}
	return gobadge.NewConfig(append(opts, extra...)...), nil
}
