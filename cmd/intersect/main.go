// Command intersect classifies pairs of line segments.
//
// Give the eight coordinates x1 y1 x2 y2 x3 y3 x4 y4 as arguments, point an
// --svg file at two <line> elements, or pass --stdin and write newline
// separated points in the form "x y", four per pair, with pairs separated by
// an extra newline.
package main

import (
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/intersect"
	"github.com/osuushi/intersect/history"
	"github.com/osuushi/intersect/input"
	"github.com/osuushi/intersect/plot"
	"github.com/osuushi/intersect/report"
)

type config struct {
	coordinates []string
	svgPath     string
	stdin       bool
	epsilon     float64
	plotPath    string
	show        bool
	historyPath string
	historySize int
	list        bool
	noColor     bool
	verbose     bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("intersect", "Classify how two line segments intersect.")
	app.Flag("svg", "Read the first two <line> elements of an SVG file.").
		Envar("INTERSECT_SVG").ExistingFileVar(&cfg.svgPath)
	app.Flag("stdin", "Read pairs of segments from stdin, one \"x y\" point per line.").
		BoolVar(&cfg.stdin)
	app.Flag("epsilon", "Treat values within epsilon of zero as zero (default: exact).").
		Envar("INTERSECT_EPSILON").Default("0").Float64Var(&cfg.epsilon)
	app.Flag("plot", "Write a PNG plot of the last pair.").
		Envar("INTERSECT_PLOT").StringVar(&cfg.plotPath)
	app.Flag("show", "Print a plot of the last pair inline (iTerm only).").
		BoolVar(&cfg.show)
	app.Flag("history", "YAML file that keeps past calculations.").
		Envar("INTERSECT_HISTORY").StringVar(&cfg.historyPath)
	app.Flag("history-size", "Maximum number of calculations kept in the history.").
		Envar("INTERSECT_HISTORY_SIZE").Default("50").IntVar(&cfg.historySize)
	app.Flag("list", "Print the history and exit.").
		BoolVar(&cfg.list)
	app.Flag("no-color", "Disable colored output.").
		Envar("INTERSECT_NO_COLOR").BoolVar(&cfg.noColor)
	app.Flag("verbose", "Log debugging details to stderr.").
		Short('v').BoolVar(&cfg.verbose)
	app.Arg("coordinates", "x1 y1 x2 y2 x3 y3 x4 y4").
		StringsVar(&cfg.coordinates)
	return app
}

func main() {
	cfg := &config{}
	app := newApp(cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := newLogger(cfg.verbose)
	printer := report.NewPrinter(os.Stdout, !cfg.noColor)
	if err := run(cfg, os.Stdin, printer, log); err != nil {
		log.WithError(err).Error("intersect failed")
		os.Exit(1)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func run(cfg *config, stdin io.Reader, printer *report.Printer, log logrus.FieldLogger) error {
	hist, err := loadHistory(cfg)
	if err != nil {
		return err
	}

	if cfg.list {
		return printer.History(hist)
	}

	pairs, err := readPairs(cfg, stdin)
	if err != nil {
		return err
	}
	log.WithField("pairs", len(pairs)).Debug("read input")

	var lastOutcome intersect.Outcome
	for _, pair := range pairs {
		outcome, err := intersect.ClassifyPair(pair, cfg.epsilon)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"kind":    outcome.Kind().String(),
			"epsilon": cfg.epsilon,
		}).Debugf("classified pair\n%s", spew.Sdump(pair, outcome))

		if err := printer.Outcome(outcome); err != nil {
			return errors.Wrap(err, "printing outcome")
		}
		entry := hist.Add(pair, outcome)
		log.WithField("label", entry.Label).Debug("added to history")
		lastOutcome = outcome
	}

	if cfg.historyPath != "" {
		if err := hist.SaveFile(cfg.historyPath); err != nil {
			return err
		}
		log.WithField("path", cfg.historyPath).Debug("saved history")
	}

	if lastOutcome == nil || (cfg.plotPath == "" && !cfg.show) {
		return nil
	}
	last := pairs[len(pairs)-1]
	img := plot.Render(last, lastOutcome, plot.Options{Caption: report.Message(lastOutcome)})
	if cfg.plotPath != "" {
		if err := plot.SavePNG(cfg.plotPath, img); err != nil {
			return err
		}
		log.WithField("path", cfg.plotPath).Info("saved plot")
	}
	if cfg.show {
		return plot.Show(img, printer.Out)
	}
	return nil
}

func loadHistory(cfg *config) (*history.History, error) {
	if cfg.historyPath == "" {
		return history.New(cfg.historySize), nil
	}
	hist, err := history.LoadFile(cfg.historyPath)
	if err != nil {
		return nil, err
	}
	hist.Limit = cfg.historySize
	return hist, nil
}

// Exactly one source of input is allowed.
func readPairs(cfg *config, stdin io.Reader) ([]intersect.Pair, error) {
	sources := 0
	for _, set := range []bool{len(cfg.coordinates) > 0, cfg.svgPath != "", cfg.stdin} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, errors.New("no input: give 8 coordinates, --svg, or --stdin")
	case sources > 1:
		return nil, errors.New("give only one of coordinates, --svg, or --stdin")
	}

	switch {
	case cfg.svgPath != "":
		f, err := os.Open(cfg.svgPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		pair, err := input.ReadSVG(f)
		if err != nil {
			return nil, errors.Wrap(err, cfg.svgPath)
		}
		return []intersect.Pair{pair}, nil
	case cfg.stdin:
		pairs, err := input.ReadPairs(stdin)
		if err != nil {
			return nil, err
		}
		if len(pairs) == 0 {
			return nil, errors.New("no pairs on stdin")
		}
		return pairs, nil
	}

	pair, err := input.ParseFields(cfg.coordinates)
	if err != nil {
		return nil, errors.Wrap(err, "coordinates")
	}
	return []intersect.Pair{pair}, nil
}
