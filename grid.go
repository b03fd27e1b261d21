package metplot

import "math"

// Array is an n-dimensional numeric array stored row-major: for a 2-D array
// of shape [nlat, nlon], Vals[j*nlon+i] is row j, column i. Adapters coerce
// every input to this float64 form before packaging.
type Array struct {
	Shape []int
	Vals  []float64
}

// NewArray wraps vals (taking ownership, no copy) with the given shape.
// len(vals) must equal the product of the shape; mismatches are not checked
// here and surface as out-of-range panics downstream.
func NewArray(vals []float64, shape ...int) *Array {
	return &Array{Shape: shape, Vals: vals}
}

// NewArrayFloat32 converts vals to float64 and wraps them with the given
// shape. Meteorological files commonly store fields as float32.
func NewArrayFloat32(vals []float32, shape ...int) *Array {
	v64 := make([]float64, len(vals))
	for i, v := range vals {
		v64[i] = float64(v)
	}
	return &Array{Shape: shape, Vals: v64}
}

// From2D flattens a nested [nlat][nlon] grid into row-major form.
// All rows are assumed to have the length of the first.
func From2D(rows [][]float64) *Array {
	if len(rows) == 0 {
		return &Array{Shape: []int{0, 0}}
	}
	ni := len(rows[0])
	vals := make([]float64, 0, len(rows)*ni)
	for _, r := range rows {
		vals = append(vals, r...)
	}
	return &Array{Shape: []int{len(rows), ni}, Vals: vals}
}

// Len returns the number of elements implied by the shape.
func (a *Array) Len() int {
	n := 1
	for _, s := range a.Shape {
		n *= s
	}
	return n
}

// Squeeze returns an array with all singleton axes dropped, sharing the
// backing values. A [1, nlat, nlon] field becomes [nlat, nlon]; a fully
// degenerate shape collapses to a single-element 1-D array.
func (a *Array) Squeeze() *Array {
	shape := make([]int, 0, len(a.Shape))
	for _, s := range a.Shape {
		if s != 1 {
			shape = append(shape, s)
		}
	}
	if len(shape) == 0 {
		shape = []int{1}
	}
	return &Array{Shape: shape, Vals: a.Vals}
}

// meshgrid expands 1-D lon/lat vectors into co-shaped 2-D [nlat, nlon]
// arrays, longitude varying along columns and latitude along rows.
func meshgrid(lon, lat []float64) (lon2, lat2 *Array) {
	nj, ni := len(lat), len(lon)
	lv := make([]float64, nj*ni)
	tv := make([]float64, nj*ni)
	for j := 0; j < nj; j++ {
		for i := 0; i < ni; i++ {
			lv[j*ni+i] = lon[i]
			tv[j*ni+i] = lat[j]
		}
	}
	return &Array{Shape: []int{nj, ni}, Vals: lv}, &Array{Shape: []int{nj, ni}, Vals: tv}
}

// strideSlice keeps every skip-th element of a 2-D array along both axes,
// starting at (0,0). skip must be >= 1. A grid with a single latitude or
// longitude squeezes to rank 1; row-major order makes a [1, n] and an [n, 1]
// grid flatten identically, so rank-1 input is treated as one row.
func strideSlice(a *Array, skip int) *Array {
	nj, ni := 1, a.Shape[0]
	if len(a.Shape) > 1 {
		nj, ni = a.Shape[0], a.Shape[1]
	}
	oj := (nj + skip - 1) / skip
	oi := (ni + skip - 1) / skip
	vals := make([]float64, 0, oj*oi)
	for j := 0; j < nj; j += skip {
		for i := 0; i < ni; i += skip {
			vals = append(vals, a.Vals[j*ni+i])
		}
	}
	return &Array{Shape: []int{oj, oi}, Vals: vals}
}

// NormLon converts a 0-360 longitude to -180..+180. Model output frequently
// uses the 0-360 convention; callers normalize before building regions.
func NormLon(lon float64) float64 {
	if lon > 180 {
		return lon - 360
	}
	return lon
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
