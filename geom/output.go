package geom

import (
	"fmt"
	"io"
	"strings"

	"github.com/vdobler/funcplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Write draws s in the given format ("png" or "svg") to w. One scene pixel
// becomes one image pixel (png) or one point (svg).
func Write(w io.Writer, format string, s funcplot.Scene, sty Style) error {
	width, height := vg.Length(s.Width), vg.Length(s.Height)

	var canvas interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch strings.ToLower(format) {
	case "png":
		img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(72))
		canvas = vgimg.PngCanvas{Canvas: img}
	case "svg":
		canvas = vgsvg.New(width, height)
	default:
		return fmt.Errorf("geom: unsupported format %q", format)
	}

	Draw(draw.New(canvas), s, sty)
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("geom: writing %s: %w", format, err)
	}
	return nil
}
