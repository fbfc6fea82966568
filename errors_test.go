package gobadge

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	err := AssetError("LoadTemplate", "M.png", fs.ErrNotExist)
	if !errors.Is(err, ErrAsset) {
		t.Error("asset error does not match ErrAsset")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("asset error does not match its cause")
	}
	if errors.Is(err, ErrIO) {
		t.Error("asset error matches ErrIO")
	}

	var e *Error
	if !errors.As(err, &e) || e.Path != "M.png" {
		t.Errorf("errors.As: %+v", e)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{AssetError("LoadTemplate", "M.png", fs.ErrNotExist), "gobadge.LoadTemplate M.png: file does not exist"},
		{IOError("WriteFile", "", errors.New("disk full")), "gobadge.WriteFile: disk full"},
		{&Error{Op: "Fit", Kind: ErrFontTooSmall}, "gobadge.Fit: " + ErrFontTooSmall.Error()},
		{&Error{Op: "Noop"}, "gobadge.Noop: unknown error"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
