package gobadge

import (
	"fmt"
	"strings"
)

// Gender selects the front template of a badge.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// ParseGender accepts "M" or "F" in any case, surrounded by optional spaces.
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M":
		return Male, nil
	case "F":
		return Female, nil
	}
	return "", PreconditionError("ParseGender", fmt.Errorf("gender %q is neither M nor F", s))
}

// Attendee is one person receiving a badge.
// Name holds the surname followed by one or more given names.
type Attendee struct {
	Name   string `yaml:"name" json:"name"`
	Gender Gender `yaml:"gender" json:"gender"`
}

// SplitName returns the surname (first token) and first name (the remaining
// tokens joined by single spaces).
func (a Attendee) SplitName() (surname, firstName string, err error) {
	fields := strings.Fields(a.Name)
	if len(fields) < 2 {
		return "", "", PreconditionError("SplitName",
			fmt.Errorf("name %q needs a surname and at least one given name", a.Name))
	}
	return fields[0], strings.Join(fields[1:], " "), nil
}

// Validate checks that the attendee can produce exactly one badge.
func (a Attendee) Validate() error {
	if _, _, err := a.SplitName(); err != nil {
		return err
	}
	if a.Gender != Male && a.Gender != Female {
		return PreconditionError("Validate", fmt.Errorf("attendee %q: gender %q is neither M nor F", a.Name, a.Gender))
	}
	return nil
}

// ValidateAll checks every attendee and reports the first offender by its
// 1-based position in the list.
func ValidateAll(attendees []Attendee) error {
	for i, a := range attendees {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("attendee %d: %w", i+1, err)
		}
	}
	return nil
}
