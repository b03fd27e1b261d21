package metplot

import "math"

// Glyph density targets: at most ~60 columns and ~30 rows of wind glyphs on
// a rendered map, regardless of input resolution.
const (
	maxGlyphCols = 60.0
	maxGlyphRows = 30.0
)

// Region is an inclusive lon/lat bounding box. Longitudes are compared
// numerically with no wrap handling; normalize 0-360 input with NormLon
// first if the region is expressed in signed degrees.
type Region struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// Stride returns the subsampling interval that keeps vector glyph density
// bounded: max(ceil(nlon/60), ceil(nlat/30)), where nlon/nlat count the
// coordinate values inside region (or all of them when region is nil).
//
// Vectors that are empty after region filtering yield 0; callers must clamp
// before using the result as a slice step.
func Stride(lon, lat []float64, region *Region) int {
	nlon, nlat := len(lon), len(lat)
	if region != nil {
		nlon, nlat = 0, 0
		for _, x := range lon {
			if x >= region.LonMin && x <= region.LonMax {
				nlon++
			}
		}
		for _, y := range lat {
			if y >= region.LatMin && y <= region.LatMax {
				nlat++
			}
		}
	}
	return max(
		int(math.Ceil(float64(nlon)/maxGlyphCols)),
		int(math.Ceil(float64(nlat)/maxGlyphRows)),
	)
}
