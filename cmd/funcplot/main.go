// The funcplot command plots functions of x.
//
// Usage:
//
//	funcplot [flags] [expression ...]
//
// Each argument is one expression; without arguments the expressions are
// read from standard input, one per line. The plot is written as PNG or SVG,
// chosen by the extension of -o. Navigation can be scripted with -actions,
// e.g. -actions in,in,left,up, and a cursor placed with -cursor 120,80 to
// show the snap marker and status line.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vdobler/funcplot"
	"github.com/vdobler/funcplot/geom"
	"github.com/vdobler/funcplot/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/plot/vg"
)

func main() {
	if err := Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "funcplot: %v\n", err)
		os.Exit(1)
	}
}

// Run executes the command with the given arguments. Log output goes to
// stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := funcplot.DefaultConfig()
	fs := flag.NewFlagSet("funcplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		out     = fs.String("o", "graph.png", "output `file` (.png or .svg), - for PNG on stdout")
		width   = fs.Int("width", 400, "image width in pixels")
		height  = fs.Int("height", 400, "image height in pixels")
		actions = fs.String("actions", "", "comma separated `list` of in, out, left, right, up, down, reset")
		cursor  = fs.String("cursor", "", "cursor position `x,y` in pixels")
		repeat  = fs.String("repeat", cfg.Repeat.String(), "repeat mode: off, horizontal, vertical or both")
		timeout = fs.Duration("timeout", 10*time.Second, "maximum sampling time")
		verbose = fs.Bool("v", false, "log debug output to stderr")
	)
	fs.IntVar(&cfg.TickCount, "ticks", cfg.TickCount, "number of ticks per axis")
	fs.Float64Var(&cfg.ZoomFactor, "zoom-factor", cfg.ZoomFactor, "zoom factor per zoom step")
	fs.Float64Var(&cfg.PanFraction, "pan-fraction", cfg.PanFraction, "fraction of the view moved per pan step")
	fs.BoolVar(&cfg.ShowAxes, "axes", cfg.ShowAxes, "always draw both axes")
	fs.Float64Var(&cfg.GridDensity, "grid", cfg.GridDensity, "grid spacing in pixels")
	fs.BoolVar(&cfg.ShowBoundingBox, "box", cfg.ShowBoundingBox, "draw the bounding box of the data")
	fs.BoolVar(&cfg.FixedRange, "fixed", cfg.FixedRange, "lock the view to the data")
	fs.Float64Var(&cfg.SnapRadius, "snap-radius", cfg.SnapRadius, "snap distance in pixels")
	fs.Float64Var(&cfg.Domain.Min, "xmin", cfg.Domain.Min, "smallest sampled x")
	fs.Float64Var(&cfg.Domain.Max, "xmax", cfg.Domain.Max, "largest sampled x")
	fs.IntVar(&cfg.Domain.N, "samples", cfg.Domain.N, "number of samples per expression")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, *verbose)
	defer logger.Sync()
	funcplot.SetLogger(logger)
	defer funcplot.SetLogger(nil)

	var err error
	if cfg.Repeat, err = funcplot.ParseRepeatMode(*repeat); err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("bad image size %dx%d", *width, *height)
	}
	w, h := float64(*width), float64(*height)

	block := strings.Join(fs.Args(), "\n")
	if fs.NArg() == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		block = string(b)
	}

	p, err := funcplot.Start(ctx, cfg, block)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	if err := p.Wait(ctx); err != nil {
		// The error is drawn into the image as well.
		logging.Logger().Warn("no graph", zap.Error(err))
	}

	if err := apply(p, *actions); err != nil {
		return err
	}
	if *cursor != "" {
		pos, err := parsePoint(*cursor)
		if err != nil {
			return err
		}
		p.Hover(pos, w, h)
	}

	scene := p.Scene(w, h)
	sty := geom.DefaultStyle(vg.Length(12))
	if *out == "-" {
		return geom.Write(stdout, "png", scene, sty)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	format := strings.TrimPrefix(filepath.Ext(*out), ".")
	if err := geom.Write(f, format, scene, sty); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// newLogger returns a console logger writing warnings, or everything if
// verbose is set, to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// apply performs the comma separated navigation actions on p.
func apply(p *funcplot.Plot, actions string) error {
	if actions == "" {
		return nil
	}
	for _, a := range strings.Split(actions, ",") {
		switch strings.TrimSpace(a) {
		case "in":
			p.ZoomIn()
		case "out":
			p.ZoomOut()
		case "left":
			p.Pan(funcplot.Left)
		case "right":
			p.Pan(funcplot.Right)
		case "up":
			p.Pan(funcplot.Up)
		case "down":
			p.Pan(funcplot.Down)
		case "reset":
			p.ResetView()
		default:
			return fmt.Errorf("unknown action %q", a)
		}
	}
	return nil
}

func parsePoint(s string) (funcplot.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return funcplot.Point{}, fmt.Errorf("bad cursor %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return funcplot.Point{}, fmt.Errorf("bad cursor %q: %v", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return funcplot.Point{}, fmt.Errorf("bad cursor %q: %v", s, err)
	}
	return funcplot.Point{X: x, Y: y}, nil
}
