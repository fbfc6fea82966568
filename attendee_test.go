package gobadge

import (
	"errors"
	"testing"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		surname   string
		firstName string
	}{
		{"SMITH JOHN", "SMITH", "JOHN"},
		{"GARCIA MARIA JOSE", "GARCIA", "MARIA JOSE"},
		{"  DOE \t JANE   ANN ", "DOE", "JANE ANN"},
		{"MÜLLER JÜRGEN", "MÜLLER", "JÜRGEN"},
	}
	for _, tt := range tests {
		surname, firstName, err := Attendee{Name: tt.name}.SplitName()
		if err != nil {
			t.Errorf("%q: %v", tt.name, err)
			continue
		}
		if surname != tt.surname || firstName != tt.firstName {
			t.Errorf("%q: got (%q, %q), want (%q, %q)", tt.name, surname, firstName, tt.surname, tt.firstName)
		}
	}
}

func TestSplitNameNeedsTwoTokens(t *testing.T) {
	for _, name := range []string{"", "   ", "CHER"} {
		if _, _, err := (Attendee{Name: name}).SplitName(); !errors.Is(err, ErrPrecondition) {
			t.Errorf("%q: expected ErrPrecondition, got %v", name, err)
		}
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
		ok   bool
	}{
		{"M", Male, true},
		{"m", Male, true},
		{" F ", Female, true},
		{"f", Female, true},
		{"", "", false},
		{"X", "", false},
		{"male", "", false},
	}
	for _, tt := range tests {
		got, err := ParseGender(tt.in)
		if tt.ok != (err == nil) || got != tt.want {
			t.Errorf("ParseGender(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, ErrPrecondition) {
			t.Errorf("ParseGender(%q): error is not ErrPrecondition: %v", tt.in, err)
		}
	}
}

func TestValidateAll(t *testing.T) {
	good := []Attendee{{Name: "SMITH JOHN", Gender: Male}, {Name: "DOE JANE", Gender: Female}}
	if err := ValidateAll(good); err != nil {
		t.Fatal(err)
	}

	bad := append(good, Attendee{Name: "DOE JOHN", Gender: "x"})
	err := ValidateAll(bad)
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
	if got := err.Error(); got[:11] != "attendee 3:" {
		t.Errorf("error %q does not name the offending position", got)
	}
}
