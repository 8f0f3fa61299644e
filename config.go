package funcplot

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/vdobler/funcplot/data"
)

// Config controls navigation and the content of the drawn scene of a Plot.
// The zero value is not valid; start from DefaultConfig.
type Config struct {
	// TickCount is the number of ticks per axis, at least 2.
	TickCount int

	// TickPrecision is the number of decimals of tick labels.
	TickPrecision int

	// ZoomFactor scales the view on ZoomIn; ZoomOut uses its inverse.
	// It must be positive and not 1. Values < 1 make ZoomIn zoom in.
	ZoomFactor float64

	// PanFraction is the fraction of the view's extent moved by one pan.
	PanFraction float64

	// ShowAxes forces both axes to be drawn even if zero lies outside the
	// view. They are then drawn along the nearest edge.
	ShowAxes bool

	// GridDensity is the pixel spacing of the background grid.
	GridDensity float64

	// ShowBoundingBox draws the graph bounds as a dashed rectangle.
	ShowBoundingBox bool

	// FixedRange locks the view to the graph bounds.
	FixedRange bool

	// Repeat selects the tiled copies of all curves.
	Repeat RepeatMode

	// SnapRadius is the maximal pixel distance of the cursor to a snap
	// target.
	SnapRadius float64

	// Domain is the set of x values expressions are sampled at.
	Domain data.Domain
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TickCount:     7,
		TickPrecision: 2,
		ZoomFactor:    0.8,
		PanFraction:   0.1,
		ShowAxes:      true,
		GridDensity:   20,
		SnapRadius:    DefaultSnapRadius,
		Repeat:        RepeatOff,
		Domain:        data.DefaultDomain,
	}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	switch {
	case c.TickCount < 2:
		return fmt.Errorf("funcplot: tick count %d < 2", c.TickCount)
	case c.TickPrecision < 0 || c.TickPrecision > 10:
		return fmt.Errorf("funcplot: tick precision %d outside [0,10]", c.TickPrecision)
	case !finite(c.ZoomFactor) || c.ZoomFactor <= 0 || c.ZoomFactor == 1:
		return fmt.Errorf("funcplot: bad zoom factor %g", c.ZoomFactor)
	case !finite(c.PanFraction) || c.PanFraction <= 0:
		return fmt.Errorf("funcplot: bad pan fraction %g", c.PanFraction)
	case !finite(c.GridDensity) || c.GridDensity <= 0:
		return fmt.Errorf("funcplot: bad grid density %g", c.GridDensity)
	case c.Repeat < RepeatOff || c.Repeat > RepeatBoth:
		return fmt.Errorf("funcplot: bad repeat mode %d", int(c.Repeat))
	case !finite(c.SnapRadius) || c.SnapRadius <= 0:
		return fmt.Errorf("funcplot: bad snap radius %g", c.SnapRadius)
	case c.Domain.N < 2 || !finite(c.Domain.Min) || !finite(c.Domain.Max) || !(c.Domain.Min < c.Domain.Max):
		return fmt.Errorf("funcplot: bad domain [%g, %g] with %d points",
			c.Domain.Min, c.Domain.Max, c.Domain.N)
	}
	return nil
}

// ParseSettings builds a Config from string settings as stored by a
// settings dialog, e.g. {"zoom_factor": "0.5", "repeat_mode": "both"}.
// Missing keys keep their default. Unknown keys are an error.
func ParseSettings(settings map[string]string) (Config, error) {
	c := DefaultConfig()
	setters := map[string]func(string) error{
		"tick_count":        intSetter(&c.TickCount),
		"tick_precision":    intSetter(&c.TickPrecision),
		"zoom_factor":       floatSetter(&c.ZoomFactor),
		"pan_factor":        floatSetter(&c.PanFraction),
		"show_axes":         boolSetter(&c.ShowAxes),
		"grid_density":      floatSetter(&c.GridDensity),
		"show_bounding_box": boolSetter(&c.ShowBoundingBox),
		"fixed_range":       boolSetter(&c.FixedRange),
		"snap_radius":       floatSetter(&c.SnapRadius),
		"repeat_mode": func(s string) (err error) {
			c.Repeat, err = ParseRepeatMode(s)
			return err
		},
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set, ok := setters[k]
		if !ok {
			return Config{}, fmt.Errorf("funcplot: unknown setting %q", k)
		}
		if err := set(settings[k]); err != nil {
			return Config{}, fmt.Errorf("funcplot: setting %s: %w", k, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func intSetter(p *int) func(string) error {
	return func(s string) (err error) {
		*p, err = strconv.Atoi(s)
		return err
	}
}

func floatSetter(p *float64) func(string) error {
	return func(s string) (err error) {
		*p, err = strconv.ParseFloat(s, 64)
		return err
	}
}

func boolSetter(p *bool) func(string) error {
	return func(s string) (err error) {
		*p, err = strconv.ParseBool(s)
		return err
	}
}
