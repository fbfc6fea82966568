package gobadge

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Geometry != A4Geometry(4) {
		t.Errorf("geometry = %+v", cfg.Geometry)
	}
	if cfg.TextColor != (color.RGBA{R: 239, G: 219, B: 199, A: 0xff}) {
		t.Errorf("text colour = %v", cfg.TextColor)
	}
	if cfg.BackLayout != BackCentered || cfg.Barcode != BarcodeNone {
		t.Errorf("layout %v, barcode %v", cfg.BackLayout, cfg.Barcode)
	}
	if cfg.OutputPath != "badges.pdf" {
		t.Errorf("output = %q", cfg.OutputPath)
	}
}

func TestOptions(t *testing.T) {
	cfg := NewConfig(
		WithGroup("GROUP 152"),
		WithHotel("Al-Ebaa"),
		WithDestination("MAKKAH"),
		WithTextColor(1, 2, 3),
		WithBackLayout(BackLeftAligned),
		WithBarcode(BarcodePDF417),
		WithOutput("out.pdf"),
		WithFont("font.ttf"),
	)
	if cfg.Group != "GROUP 152" || cfg.Hotel != "Al-Ebaa" || cfg.Destination != "MAKKAH" {
		t.Errorf("text = %q %q %q", cfg.Group, cfg.Hotel, cfg.Destination)
	}
	if cfg.TextColor != (color.RGBA{1, 2, 3, 0xff}) {
		t.Errorf("text colour = %v", cfg.TextColor)
	}
	if cfg.BackLayout != BackLeftAligned || cfg.Barcode != BarcodePDF417 {
		t.Errorf("layout %v, barcode %v", cfg.BackLayout, cfg.Barcode)
	}
	if cfg.OutputPath != "out.pdf" || cfg.FontPath != "font.ttf" {
		t.Errorf("paths = %q %q", cfg.OutputPath, cfg.FontPath)
	}
}

func TestTemplatesFor(t *testing.T) {
	tpl := Templates{Male: "m.png", Female: "f.png"}
	if tpl.For(Male) != "m.png" || tpl.For(Female) != "f.png" {
		t.Errorf("For: %q %q", tpl.For(Male), tpl.For(Female))
	}
}

func TestParseBackLayout(t *testing.T) {
	for in, want := range map[string]BackLayout{"": BackCentered, "Centered": BackCentered, "left": BackLeftAligned} {
		got, err := ParseBackLayout(in)
		if err != nil || got != want {
			t.Errorf("ParseBackLayout(%q) = %v, %v", in, got, err)
		}
		if back, _ := ParseBackLayout(got.String()); back != got {
			t.Errorf("%v does not parse back from its name", got)
		}
	}
	if _, err := ParseBackLayout("diagonal"); !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected ErrPrecondition, got %v", err)
	}
}

func TestParseBarcodeKind(t *testing.T) {
	for _, k := range []BarcodeKind{BarcodeNone, BarcodeQR, BarcodeCode128, BarcodePDF417} {
		got, err := ParseBarcodeKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseBarcodeKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseBarcodeKind("aztec"); !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected ErrPrecondition, got %v", err)
	}
}
