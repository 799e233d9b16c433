// Package plot draws a pair of segments and their intersection.
package plot

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/intersect"
)

const (
	defaultSize    = 400
	defaultPadding = 40
	pointRadius    = 5 // pixels
)

type Options struct {
	// Pixels along the longer side of the bounding box, excluding padding
	Size    int
	// Pixels around the bounding box on every side
	Padding int
	// Drawn in the top left corner if not empty
	Caption string
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = defaultSize
	}
	if o.Padding < 0 {
		o.Padding = 0
	} else if o.Padding == 0 {
		o.Padding = defaultPadding
	}
	return o
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

// Bounding box of the four points. A side of zero length is grown to one
// unit so that vertical, horizontal and single point pairs still get a
// drawable area.
func boundsOf(pair intersect.Pair) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pair.Points() {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	if b.maxX == b.minX {
		b.minX -= 0.5
		b.maxX += 0.5
	}
	if b.maxY == b.minY {
		b.minY -= 0.5
		b.maxY += 0.5
	}
	return b
}

// Render draws the first segment in cyan and the second in magenta, then the
// shared part on top: a white dot for a crossing point, a thick yellow stroke
// for an overlap (a yellow dot if the overlap is a single point).
func Render(pair intersect.Pair, outcome intersect.Outcome, opts Options) image.Image {
	opts = opts.withDefaults()
	b := boundsOf(pair)
	scale := float64(opts.Size) / math.Max(b.maxX-b.minX, b.maxY-b.minY)

	// Set up the context
	width := int(scale*(b.maxX-b.minX)) + opts.Padding*2
	height := int(scale*(b.maxY-b.minY)) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	if opts.Caption != "" {
		c.SetRGB(1, 1, 1)
		c.DrawString(opts.Caption, 8, 16)
	}

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-b.minX, -b.minY)

	c.SetLineWidth(2)
	drawSegment(c, pair.First)
	c.SetRGB(0, 1, 1)
	c.Stroke()
	drawSegment(c, pair.Second)
	c.SetRGB(1, 0, 1)
	c.Stroke()

	// Radii go through the matrix like everything else
	radius := pointRadius / scale
	switch o := outcome.(type) {
	case intersect.PointIntersection:
		c.DrawCircle(o.Point.X, o.Point.Y, radius)
		c.SetRGB(1, 1, 1)
		c.Fill()
	case intersect.CollinearOverlap:
		c.SetRGB(1, 1, 0)
		if o.IsPoint() {
			c.DrawCircle(o.Start.X, o.Start.Y, radius)
			c.Fill()
		} else {
			c.SetLineWidth(6)
			drawSegment(c, o.Segment())
			c.Stroke()
		}
	}

	return c.Image()
}

func drawSegment(c *gg.Context, s intersect.Segment) {
	c.MoveTo(s.Start.X, s.Start.Y)
	c.LineTo(s.End.X, s.End.Y)
}

func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(gg.SavePNG(path, img), "saving plot to %s", path)
}

// Show prints the image inline in the terminal (iTerm compatible terminals
// only).
func Show(img image.Image, out io.Writer) error {
	f, err := os.CreateTemp("", "intersect-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temp file for plot")
	}
	defer os.Remove(f.Name())
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "creating temp file for plot")
	}

	if err := SavePNG(f.Name(), img); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), out), "printing plot")
}
