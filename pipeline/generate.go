package pipeline

import (
	"fmt"

	"github.com/lvillar/gobadge"
	"github.com/lvillar/gobadge/assemble"
	"github.com/lvillar/gobadge/fontfit"
	"github.com/lvillar/gobadge/render"
	"github.com/lvillar/gobadge/sheet"
)

// Summary describes a finished run.
type Summary struct {
	Attendees int
	Pages     int
	Blanks    int // placeholder badges on the last front page
	Output    string
}

// Generate renders badges for attendees as described by cfg and writes the
// PDF to cfg.OutputPath. Nothing is written unless every page succeeds.
func Generate(cfg gobadge.Config, attendees []gobadge.Attendee, opts ...Option) (Summary, error) {
	if len(attendees) == 0 {
		return Summary{}, gobadge.PreconditionError("Generate", fmt.Errorf("no attendees"))
	}
	if err := gobadge.ValidateAll(attendees); err != nil {
		return Summary{}, err
	}

	sheets, err := sheet.New(cfg.Geometry)
	if err != nil {
		return Summary{}, err
	}
	fitter, err := fontfit.Load(cfg.FontPath)
	if err != nil {
		return Summary{}, err
	}
	r, err := render.New(cfg, fitter)
	if err != nil {
		return Summary{}, err
	}

	doc := assemble.New()
	doc.SetTitle(fmt.Sprintf("%s - %s - %s", cfg.Group, cfg.Destination, cfg.Hotel))

	job := Job{Group: cfg.Group, Hotel: cfg.Hotel, Destination: cfg.Destination}
	if err := New(r, sheets, opts...).Run(attendees, job, doc); err != nil {
		return Summary{}, err
	}
	if err := doc.WriteFile(cfg.OutputPath); err != nil {
		return Summary{}, err
	}

	return Summary{
		Attendees: len(attendees),
		Pages:     doc.Pages(),
		Blanks:    BatchCount(len(attendees))*gobadge.BadgesPerPage - len(attendees),
		Output:    cfg.OutputPath,
	}, nil
}
