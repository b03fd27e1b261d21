package metplot

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// ErrRendererUnavailable reports that the plotting backend failed its
// startup probe. Callers decide whether that is fatal; the metplot CLI
// prints InstallHint and exits, a host application may fall back.
var ErrRendererUnavailable = errors.New("metplot: plotting backend unavailable")

// InstallHint is the guidance printed by front ends when EnsureRenderer
// fails.
const InstallHint = `The gogpu/gg plotting backend could not complete a test render.
Make sure the module was built with a working github.com/gogpu/gg; see
https://github.com/gogpu/gg for platform notes.`

// EnsureRenderer probes the plotting backend with a minimal fill on a
// throwaway context. It returns nil when the backend works, or an error
// wrapping ErrRendererUnavailable.
func EnsureRenderer() error {
	dc := gg.NewContext(1, 1)
	if dc == nil {
		return ErrRendererUnavailable
	}
	defer dc.Close()
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(0, 0, 1, 1)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("%w: probe fill: %v", ErrRendererUnavailable, err)
	}
	Logger().Debug("renderer probe ok")
	return nil
}

// projection maps lon/lat to pixel coordinates over an equirectangular
// plot area. Degenerate extents (a single coordinate value) collapse to
// the plot-area center.
type projection struct {
	lonMin, lonSpan float64
	latMax, latSpan float64
	x0, y0, w, h    float64
}

func newProjection(lon, lat []float64, st *Style) projection {
	lonMin, lonMax := finiteRange(lon)
	latMin, latMax := finiteRange(lat)
	m := float64(st.Margin)
	return projection{
		lonMin: lonMin, lonSpan: lonMax - lonMin,
		latMax: latMax, latSpan: latMax - latMin,
		x0: m, y0: m,
		w: float64(st.Width) - 2*m,
		h: float64(st.Height) - 2*m,
	}
}

func (p projection) point(lon, lat float64) (x, y float64) {
	if p.lonSpan == 0 {
		x = p.x0 + p.w/2
	} else {
		x = p.x0 + (lon-p.lonMin)/p.lonSpan*p.w
	}
	if p.latSpan == 0 {
		y = p.y0 + p.h/2
	} else {
		y = p.y0 + (p.latMax-lat)/p.latSpan*p.h
	}
	return
}

// finiteRange returns the min and max of the finite values in vals,
// or (0, 0) when there are none.
func finiteRange(vals []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// paletteColor interpolates the style palette at t in [0, 1].
func paletteColor(palette []string, t float64) gg.RGBA {
	if len(palette) == 0 {
		return gg.RGB(0.5, 0.5, 0.5)
	}
	if len(palette) == 1 || t <= 0 {
		return gg.Hex(palette[0])
	}
	if t >= 1 {
		return gg.Hex(palette[len(palette)-1])
	}
	f := t * float64(len(palette)-1)
	k := int(f)
	frac := f - float64(k)
	a := gg.Hex(palette[k])
	b := gg.Hex(palette[k+1])
	return gg.RGB(
		a.R+(b.R-a.R)*frac,
		a.G+(b.G-a.G)*frac,
		a.B+(b.B-a.B)*frac,
	)
}

// RenderScalar draws a prepared scalar field as colored grid cells.
// Non-finite cells are left at the background color. The value range for
// the palette comes from the style when MinValue/MaxValue are set, and from
// the finite data otherwise.
func RenderScalar(in *ScalarInput, st *Style) (*gg.Context, error) {
	if st == nil {
		st = DefaultStyle()
	}
	if len(in.Field.Shape) != 2 {
		return nil, fmt.Errorf("metplot: scalar field is %d-dimensional after squeezing, want 2",
			len(in.Field.Shape))
	}
	nj, ni := in.Field.Shape[0], in.Field.Shape[1]

	lo, hi := finiteRange(in.Field.Vals)
	if st.MinValue != nil {
		lo = *st.MinValue
	}
	if st.MaxValue != nil {
		hi = *st.MaxValue
	}
	span := hi - lo

	dc := gg.NewContext(st.Width, st.Height)
	dc.ClearWithColor(gg.Hex(st.Background))
	p := newProjection(in.Longitudes, in.Latitudes, st)

	// Cell size from the grid resolution; +1 px overlap hides seams from
	// fractional cell boundaries.
	cw := p.w/float64(ni) + 1
	ch := p.h/float64(nj) + 1

	for j := 0; j < nj; j++ {
		for i := 0; i < ni; i++ {
			v := in.Field.Vals[j*ni+i]
			if !isFinite(v) {
				continue
			}
			t := 0.5
			if span != 0 {
				t = (v - lo) / span
			}
			x, y := p.point(in.Longitudes[i], in.Latitudes[j])
			dc.SetColor(paletteColor(st.Palette, t).Color())
			dc.DrawRectangle(x-cw/2, y-ch/2, cw, ch)
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("metplot: filling cell (%d,%d): %w", j, i, err)
			}
		}
	}
	Logger().Debug("scalar field rendered", "grid", in.Field.Shape, "lo", lo, "hi", hi)
	return dc, nil
}

// RenderVector draws a prepared vector field as one arrow per point, the
// arrow direction from (u, v) with v pointing up the map and the length
// scaled by ArrowScale. A nil input renders a background-only map: nothing
// to draw is not an error.
func RenderVector(in *VectorInput, st *Style) (*gg.Context, error) {
	if st == nil {
		st = DefaultStyle()
	}
	dc := gg.NewContext(st.Width, st.Height)
	dc.ClearWithColor(gg.Hex(st.Background))
	if in == nil {
		Logger().Debug("vector field empty, rendered background only")
		return dc, nil
	}

	p := newProjection(in.Longitudes, in.Latitudes, st)
	dc.SetHexColor(st.ArrowColor)
	dc.SetLineWidth(st.LineWidth)

	for i := range in.XComponent {
		u, v := in.XComponent[i], in.YComponent[i]
		x, y := p.point(in.Longitudes[i], in.Latitudes[i])
		speed := math.Hypot(u, v)
		if speed == 0 {
			dc.DrawPoint(x, y, st.LineWidth)
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("metplot: drawing calm point %d: %w", i, err)
			}
			continue
		}
		// Screen y grows downward, northward v points up.
		dx := u * st.ArrowScale
		dy := -v * st.ArrowScale
		tipX, tipY := x+dx, y+dy
		dc.DrawLine(x, y, tipX, tipY)

		// Arrow head: two barbs swept back 150° from the shaft direction.
		ang := math.Atan2(dy, dx)
		head := math.Max(3, st.ArrowScale*speed*0.25)
		for _, da := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
			dc.DrawLine(tipX, tipY,
				tipX+head*math.Cos(ang+da),
				tipY+head*math.Sin(ang+da))
		}
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("metplot: stroking arrow %d: %w", i, err)
		}
	}
	Logger().Debug("vector field rendered", "points", len(in.XComponent))
	return dc, nil
}
