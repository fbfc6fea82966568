package render

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/lvillar/gobadge"
)

// PDF417 symbol shape used for check-in codes.
const (
	pdf417Columns       = 6
	pdf417SecurityLevel = 2
)

// CheckInCode is the text encoded on a front badge.
func CheckInCode(group, surname, firstName string) string {
	return group + "|" + surname + " " + firstName
}

// encodeBarcode renders content in the given symbology, scaled to fit a box
// of w x h pixels. QR codes are square and use the shorter side.
func encodeBarcode(kind gobadge.BarcodeKind, content string, w, h int) (image.Image, error) {
	var (
		code barcode.Barcode
		err  error
	)
	switch kind {
	case gobadge.BarcodeQR:
		code, err = qr.Encode(content, qr.M, qr.Auto)
		w = min(w, h)
		h = w
	case gobadge.BarcodeCode128:
		code, err = code128.Encode(content)
	case gobadge.BarcodePDF417:
		code = pdf417.Encode(content, pdf417Columns, pdf417SecurityLevel)
	default:
		return nil, fmt.Errorf("unsupported barcode kind %v", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %v: %w", kind, err)
	}
	scaled, err := barcode.Scale(code, w, h)
	if err != nil {
		return nil, fmt.Errorf("scaling %v to %dx%d: %w", kind, w, h, err)
	}
	return scaled, nil
}
