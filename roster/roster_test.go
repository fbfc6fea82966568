package roster

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lvillar/gobadge"
)

const sample = `
group: GROUP 12
hotel: Hotel Aurora
destination: LISBON
output: out/group12.pdf
font: fonts/Unbounded-Bold.ttf
text_color: [10, 20, 30]
templates:
  male: tpl/M.png
  hotel_dir: hotels
back_layout: left
barcode: qr
scale: 2
attendees:
  - {name: SMITH JOHN, gender: M}
  - {name: "GARCIA  MARIA JOSE", gender: " f "}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "run.yaml", sample)
	dir := filepath.Dir(path)

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	people, err := f.People()
	if err != nil {
		t.Fatal(err)
	}
	wantPeople := []gobadge.Attendee{
		{Name: "SMITH JOHN", Gender: gobadge.Male},
		{Name: "GARCIA  MARIA JOSE", Gender: gobadge.Female},
	}
	if diff := cmp.Diff(wantPeople, people); diff != "" {
		t.Errorf("attendees mismatch (-want +got):\n%s", diff)
	}

	cfg, err := f.Config()
	if err != nil {
		t.Fatal(err)
	}
	want := gobadge.Config{
		Group:       "GROUP 12",
		Hotel:       "Hotel Aurora",
		Destination: "LISBON",
		Geometry:    gobadge.A4Geometry(2),
		TextColor:   color.RGBA{R: 10, G: 20, B: 30, A: 0xff},
		FontPath:    filepath.Join(dir, "fonts", "Unbounded-Bold.ttf"),
		OutputPath:  filepath.Join(dir, "out", "group12.pdf"),
		Templates: gobadge.Templates{
			Male:     filepath.Join(dir, "tpl", "M.png"),
			Female:   "F.png",
			Back:     "backside.png",
			HotelDir: filepath.Join(dir, "hotels"),
		},
		BackLayout: gobadge.BackLeftAligned,
		Barcode:    gobadge.BarcodeQR,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaults(t *testing.T) {
	f, err := Parse([]byte("group: G\nattendees: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config()
	if err != nil {
		t.Fatal(err)
	}
	want := gobadge.NewConfig(gobadge.WithGroup("G"))
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigExtraOptionsWin(t *testing.T) {
	f, err := Parse([]byte("group: G\noutput: a.pdf\nattendees: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config(gobadge.WithOutput("b.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputPath != "b.pdf" {
		t.Errorf("OutputPath = %q, want b.pdf", cfg.OutputPath)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte("{\n\t\"group\": \"G\",\n\t\"hotel\": \"H\",\n\t\"attendees\": [\n\t\t{\"name\": \"DOE JANE\", \"gender\": \"F\"}\n\t]\n}\n")
	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Group != "G" || f.Hotel != "H" || len(f.Attendees) != 1 {
		t.Errorf("decoded %+v", f)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"unknown key", "group: G\ncolour: red\n"},
		{"unknown json key", `{"group": "G", "colour": "red"}`},
		{"bad yaml", "group: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, gobadge.ErrPrecondition) {
				t.Errorf("expected ErrPrecondition, got %v", err)
			}
		})
	}
}

func TestPeopleErrors(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"bad gender", Entry{Name: "SMITH JOHN", Gender: "X"}},
		{"missing gender", Entry{Name: "SMITH JOHN"}},
		{"single name", Entry{Name: "SMITH", Gender: "M"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Attendees: []Entry{{Name: "DOE JANE", Gender: "F"}, tt.entry}}
			if _, err := f.People(); !errors.Is(err, gobadge.ErrPrecondition) {
				t.Errorf("expected ErrPrecondition, got %v", err)
			}
		})
	}
}

func TestOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{"short colour", File{TextColor: []int{1, 2}}},
		{"colour out of range", File{TextColor: []int{1, 2, 256}}},
		{"negative scale", File{Scale: -1}},
		{"unknown layout", File{BackLayout: "diagonal"}},
		{"unknown barcode", File{Barcode: "aztec"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.file.Options(); !errors.Is(err, gobadge.ErrPrecondition) {
				t.Errorf("expected ErrPrecondition, got %v", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, gobadge.ErrAsset) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrAsset wrapping not-exist, got %v", err)
	}
}

func TestLoadKeepsAbsolutePaths(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere.pdf")
	path := writeFile(t, "run.yaml", "group: G\noutput: "+abs+"\nattendees: []\n")
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Output != abs {
		t.Errorf("Output = %q, want %q", f.Output, abs)
	}
}
