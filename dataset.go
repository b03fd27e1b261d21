package metplot

// DataArray is a labeled n-dimensional variable: named axes with coordinate
// vectors and attached attributes, the way NetCDF and similar formats carry
// model output. Data's shape parallels Dims.
type DataArray struct {
	Name   string
	Dims   []string
	Coords map[string][]float64
	Attrs  Metadata
	Data   *Array
}

// spatial dimension names; anything else (time, level, member, ...) is
// collapsed before plotting.
const (
	dimLon = "lon"
	dimLat = "lat"
)

// selectFirst collapses the named axis by keeping only its first index,
// mirroring "select the first coordinate value" on a labeled dataset.
// Returns da unchanged if the dim is absent.
func (da *DataArray) selectFirst(dim string) *DataArray {
	axis := -1
	for k, d := range da.Dims {
		if d == dim {
			axis = k
			break
		}
	}
	if axis < 0 {
		return da
	}

	outer, inner := 1, 1
	for k, s := range da.Data.Shape {
		if k < axis {
			outer *= s
		} else if k > axis {
			inner *= s
		}
	}
	axisN := da.Data.Shape[axis]

	vals := make([]float64, 0, outer*inner)
	for o := 0; o < outer; o++ {
		start := o * axisN * inner
		vals = append(vals, da.Data.Vals[start:start+inner]...)
	}

	dims := make([]string, 0, len(da.Dims)-1)
	shape := make([]int, 0, len(da.Data.Shape)-1)
	for k := range da.Dims {
		if k == axis {
			continue
		}
		dims = append(dims, da.Dims[k])
		shape = append(shape, da.Data.Shape[k])
	}
	coords := make(map[string][]float64, len(da.Coords))
	for name, c := range da.Coords {
		if name == dim {
			continue
		}
		coords[name] = c
	}
	return &DataArray{
		Name:   da.Name,
		Dims:   dims,
		Coords: coords,
		Attrs:  da.Attrs,
		Data:   &Array{Shape: shape, Vals: vals},
	}
}

// collapse reduces the array to a 2-D lat/lon grid by selecting the first
// coordinate value along every non-spatial axis.
func (da *DataArray) collapse() *DataArray {
	out := da
	for _, d := range da.Dims {
		if d == dimLon || d == dimLat {
			continue
		}
		out = out.selectFirst(d)
	}
	return out
}

// Lat returns the latitude coordinate vector.
func (da *DataArray) Lat() []float64 { return da.Coords[dimLat] }

// Lon returns the longitude coordinate vector.
func (da *DataArray) Lon() []float64 { return da.Coords[dimLon] }

// clone returns a fresh copy of the metadata so downstream mutation never
// writes back into a shared map.
func (m Metadata) clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ScalarFromArray reduces a labeled variable to a 2-D lat/lon grid and
// packages it as a geographical scalar input record. Non-spatial axes are
// collapsed to their first coordinate value. When md is nil, the variable's
// own attributes are used (copied, never shared).
func ScalarFromArray(da *DataArray, md Metadata) *ScalarInput {
	g := da.collapse()
	if md == nil {
		md = g.Attrs.clone()
	}
	Logger().Debug("labeled scalar collapsed",
		"var", da.Name, "dims", da.Dims, "grid", g.Data.Shape)
	return NewScalar(g.Data, g.Lon(), g.Lat(), md)
}

// VectorFromArrays reduces labeled u/v variables to 2-D lat/lon grids and
// packages them as a geographical vector input record. Each variable's
// non-spatial axes are collapsed independently to their first coordinate
// value; the two are assumed aligned. Coordinates are taken from u.
//
// The non-finite filter applies exactly as in NewVector, so the result is
// nil when no finite point survives.
func VectorFromArrays(u, v *DataArray, skip int, md Metadata) *VectorInput {
	cu := u.collapse()
	cv := v.collapse()
	Logger().Debug("labeled vector collapsed",
		"u", u.Name, "v", v.Name, "grid", cu.Data.Shape, "skip", skip)
	return NewVector(cu.Data, cv.Data, cu.Lon(), cu.Lat(), skip, md)
}
