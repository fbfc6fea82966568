// Command gobadge prints conference badges.
//
// # Usage
//
//	gobadge generate [-o out.pdf] [-layout centered|left] [-barcode kind] run.yaml
//	gobadge merge -o all.pdf group1.pdf group2.pdf ...
//	gobadge inspect badges.pdf ...
//
// generate reads a run file (see package roster) and writes a PDF with one
// page of front badges followed by one page of back badges for every nine
// attendees. merge combines several such documents into one print file and
// inspect reports page counts and sizes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/lvillar/gobadge"
	"github.com/lvillar/gobadge/pageops"
	"github.com/lvillar/gobadge/pipeline"
	"github.com/lvillar/gobadge/roster"
)

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("gobadge: ")

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	switch args[0] {
	case "generate":
		return generate(args[1:], stdout, stderr)
	case "merge":
		return merge(args[1:], stdout, stderr)
	case "inspect":
		return inspect(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	}
	fmt.Fprintf(stderr, "unknown command %q\n", args[0])
	usage(stderr)
	return errUsage
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: gobadge <command> [flags] [args]

commands:
  generate  render the badges of a run file into a PDF
  merge     combine several badge PDFs into one file
  inspect   print page count and page sizes of badge PDFs
`)
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name, args string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: gobadge %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}

func generate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("generate", "run.yaml", stderr)
	out := fs.String("o", "", "output file (overrides the run file)")
	layout := fs.String("layout", "", "backside layout: centered or left (overrides the run file)")
	barcode := fs.String("barcode", "", "check-in code: none, qr, code128 or pdf417 (overrides the run file)")
	quiet := fs.Bool("q", false, "do not show progress")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	f, err := roster.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	attendees, err := f.People()
	if err != nil {
		return err
	}

	var extra []gobadge.Option
	if *out != "" {
		extra = append(extra, gobadge.WithOutput(*out))
	}
	if *layout != "" {
		l, err := gobadge.ParseBackLayout(*layout)
		if err != nil {
			return err
		}
		extra = append(extra, gobadge.WithBackLayout(l))
	}
	if *barcode != "" {
		k, err := gobadge.ParseBarcodeKind(*barcode)
		if err != nil {
			return err
		}
		extra = append(extra, gobadge.WithBarcode(k))
	}
	cfg, err := f.Config(extra...)
	if err != nil {
		return err
	}

	var opts []pipeline.Option
	if !*quiet && isTerminal(stderr) {
		p := &progressLine{w: stderr}
		opts = append(opts, pipeline.WithProgress(p.update))
		defer p.done()
	}

	sum, err := pipeline.Generate(cfg, attendees, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d badges, %d pages, %d blank\n", sum.Output, sum.Attendees, sum.Pages, sum.Blanks)
	return nil
}

func merge(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("merge", "input.pdf...", stderr)
	out := fs.String("o", "merged.pdf", "output file")
	force := fs.Bool("f", false, "overwrite output file if it exists")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "no input files given")
		fs.Usage()
		return errUsage
	}
	if !*force {
		if _, err := os.Stat(*out); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", *out)
		}
	}

	if err := pageops.MergeFiles(*out, fs.Args()...); err != nil {
		return err
	}
	report, err := pageops.Inspect(*out)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %v\n", *out, report)
	return nil
}

func inspect(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("inspect", "file.pdf...", stderr)
	verbose := fs.Bool("v", false, "list every page size")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return errUsage
	}

	for _, path := range fs.Args() {
		report, err := pageops.Inspect(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %v\n", path, report)
		if *verbose {
			for i, p := range report.Pages {
				fmt.Fprintf(stdout, "  page %d: %.2f x %.2f pt\n", i+1, p.Width, p.Height)
			}
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var spinner = []rune{'|', '/', '-', '\\'}

// progressLine redraws a single status line after every batch.
type progressLine struct {
	w     io.Writer
	ticks int
}

func (p *progressLine) update(s pipeline.Status) {
	r := spinner[p.ticks%len(spinner)]
	p.ticks++
	fmt.Fprintf(p.w, "\rProcessing batch %d/%d %c | ETA: %d seconds remaining...",
		s.Batch, s.Batches, r, int(s.ETA.Round(time.Second)/time.Second))
}

func (p *progressLine) done() {
	if p.ticks > 0 {
		fmt.Fprintln(p.w)
	}
}
