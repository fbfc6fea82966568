// Package pipeline turns an attendee list into an ordered sequence of
// pages: for every nine attendees one page of front badges followed by one
// page of matching back badges.
//
// The last batch is padded with blank badges so every page carries a full
// 3x3 grid. Any failure aborts the run; there is no partial document.
package pipeline

import (
	"fmt"
	"image"
	"time"

	"github.com/lvillar/gobadge"
	"github.com/lvillar/gobadge/render"
)

// Renderer draws single badges.
type Renderer interface {
	RenderFront(a gobadge.Attendee, group string) (*image.RGBA, error)
	RenderBack(b render.Backside) (*image.RGBA, error)
}

// Compositor lays a batch of badges out on a page.
type Compositor interface {
	Compose(badges []image.Image) (*image.RGBA, error)
	Blank() image.Image
}

// PageSink consumes pages in order as they are produced.
type PageSink interface {
	AddPage(img image.Image) error
}

// Job holds the text shared by every badge of a run.
type Job struct {
	Group       string
	Hotel       string
	Destination string
}

// Status is reported after each batch.
type Status struct {
	Batch   int           // 1-based index of the finished batch
	Batches int           // total number of batches
	Elapsed time.Duration // time spent on finished batches
	ETA     time.Duration // estimate for the remaining batches
}

// Progress receives a Status after each batch.
type Progress func(Status)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProgress installs a progress callback.
func WithProgress(fn Progress) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// Pipeline drives rendering and page composition.
type Pipeline struct {
	renderer Renderer
	sheets   Compositor
	progress Progress
	now      func() time.Time
}

// New returns a pipeline drawing badges with r onto pages from c.
func New(r Renderer, c Compositor, opts ...Option) *Pipeline {
	p := &Pipeline{renderer: r, sheets: c, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BatchCount is the number of batches, and so front pages, for n attendees.
func BatchCount(n int) int {
	return (n + gobadge.BadgesPerPage - 1) / gobadge.BadgesPerPage
}

// PageCount is the number of pages produced for n attendees.
func PageCount(n int) int {
	return 2 * BatchCount(n)
}

// Run renders every attendee and hands pages to sink in the order front,
// back, front, back, ... Attendees are validated before anything is drawn.
func (p *Pipeline) Run(attendees []gobadge.Attendee, job Job, sink PageSink) error {
	if err := gobadge.ValidateAll(attendees); err != nil {
		return err
	}

	back := render.Backside{Group: job.Group, Hotel: job.Hotel, Destination: job.Destination}
	total := BatchCount(len(attendees))
	var spent time.Duration

	for b := 0; b < total; b++ {
		start := p.now()

		lo := b * gobadge.BadgesPerPage
		hi := min(lo+gobadge.BadgesPerPage, len(attendees))
		fronts := make([]image.Image, 0, gobadge.BadgesPerPage)
		for _, a := range attendees[lo:hi] {
			badge, err := p.renderer.RenderFront(a, job.Group)
			if err != nil {
				return fmt.Errorf("pipeline: batch %d: %w", b+1, err)
			}
			fronts = append(fronts, badge)
		}
		for len(fronts) < gobadge.BadgesPerPage {
			fronts = append(fronts, p.sheets.Blank())
		}

		backs := make([]image.Image, 0, len(fronts))
		for range fronts {
			badge, err := p.renderer.RenderBack(back)
			if err != nil {
				return fmt.Errorf("pipeline: batch %d: %w", b+1, err)
			}
			backs = append(backs, badge)
		}

		for _, side := range [][]image.Image{fronts, backs} {
			page, err := p.sheets.Compose(side)
			if err != nil {
				return fmt.Errorf("pipeline: batch %d: %w", b+1, err)
			}
			if err := sink.AddPage(page); err != nil {
				return fmt.Errorf("pipeline: batch %d: %w", b+1, err)
			}
		}

		spent += p.now().Sub(start)
		if p.progress != nil {
			done := b + 1
			avg := spent / time.Duration(done)
			p.progress(Status{
				Batch:   done,
				Batches: total,
				Elapsed: spent,
				ETA:     avg * time.Duration(total-done),
			})
		}
	}
	return nil
}

// Collector is a PageSink that keeps every page in memory.
type Collector struct {
	Pages []image.Image
}

func (c *Collector) AddPage(img image.Image) error {
	c.Pages = append(c.Pages, img)
	return nil
}

// Process runs the pipeline and returns all pages.
func (p *Pipeline) Process(attendees []gobadge.Attendee, job Job) ([]image.Image, error) {
	var c Collector
	if err := p.Run(attendees, job, &c); err != nil {
		return nil, err
	}
	return c.Pages, nil
}
