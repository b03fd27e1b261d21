package metplot

// InputTypeGeographical tags an input record so the plotting backend
// interprets its coordinates as latitude/longitude rather than page space.
const InputTypeGeographical = "geographical"

// ScalarInput is a prepared scalar-field input record: a 2-D grid of values
// plus the coordinate vectors spanning it. The downstream argument names are
// produced by Args.
type ScalarInput struct {
	Field      *Array
	Latitudes  []float64
	Longitudes []float64
	Metadata   Metadata
}

// NewScalar packages a 2-D data grid with its lon/lat coordinate vectors
// into a geographical scalar input record. Singleton axes of data are
// squeezed away; values pass through unfiltered (scalar fields may contain
// NaN, the renderer skips them). Metadata is forwarded as given, nil
// included.
//
// data must describe a (len(lat), len(lon)) grid after squeezing; this is
// not validated here.
func NewScalar(data *Array, lon, lat []float64, md Metadata) *ScalarInput {
	field := data.Squeeze()
	Logger().Debug("scalar input prepared",
		"shape", field.Shape, "nlon", len(lon), "nlat", len(lat))
	return &ScalarInput{
		Field:      field,
		Latitudes:  lat,
		Longitudes: lon,
		Metadata:   md,
	}
}

// Args returns the named-argument form of the record as the plotting
// backend's input constructor expects it. The *_list coordinate names are
// specific to the scalar form; the vector form uses *_values. Both shapes
// are fixed by the downstream contract and must not be unified.
func (in *ScalarInput) Args() map[string]any {
	return map[string]any{
		"input_type":            InputTypeGeographical,
		"input_field":           in.Field,
		"input_latitudes_list":  in.Latitudes,
		"input_longitudes_list": in.Longitudes,
		"input_metadata":        in.Metadata,
	}
}

// VectorInput is a prepared vector-field input record: flattened u/v
// component values with per-point coordinates. All four slices are
// co-indexed and every point is finite.
type VectorInput struct {
	XComponent []float64
	YComponent []float64
	Latitudes  []float64
	Longitudes []float64
	Metadata   Metadata
}

// NewVector packages co-registered u/v component grids into a geographical
// vector input record. Both grids are squeezed, the lon/lat vectors are
// expanded to matching 2-D meshes, all four arrays are subsampled by skip
// along both axes and flattened, and every index where u or v is non-finite
// is dropped from all four slices jointly, so surviving points stay
// co-indexed.
//
// skip values below 1 are treated as 1. A nil metadata is replaced by
// DefaultVectorMetadata. Returns nil when no finite point survives:
// nothing to render, not an error.
func NewVector(u, v *Array, lon, lat []float64, skip int, md Metadata) *VectorInput {
	if skip < 1 {
		skip = 1
	}
	uf := strideSlice(u.Squeeze(), skip)
	vf := strideSlice(v.Squeeze(), skip)
	lon2, lat2 := meshgrid(lon, lat)
	lon2 = strideSlice(lon2, skip)
	lat2 = strideSlice(lat2, skip)

	// Joint non-finite filter over the flattened points.
	n := len(uf.Vals)
	uo := make([]float64, 0, n)
	vo := make([]float64, 0, n)
	lato := make([]float64, 0, n)
	lono := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if !isFinite(uf.Vals[i]) || !isFinite(vf.Vals[i]) {
			continue
		}
		uo = append(uo, uf.Vals[i])
		vo = append(vo, vf.Vals[i])
		lato = append(lato, lat2.Vals[i])
		lono = append(lono, lon2.Vals[i])
	}
	Logger().Debug("vector input prepared",
		"skip", skip, "points", len(uo), "dropped", n-len(uo))
	if len(uo) == 0 {
		return nil
	}

	if md == nil {
		md = DefaultVectorMetadata()
	}
	return &VectorInput{
		XComponent: uo,
		YComponent: vo,
		Latitudes:  lato,
		Longitudes: lono,
		Metadata:   md,
	}
}

// Args returns the named-argument form of the record for the plotting
// backend's input constructor.
func (in *VectorInput) Args() map[string]any {
	return map[string]any{
		"input_type":               InputTypeGeographical,
		"input_x_component_values": in.XComponent,
		"input_y_component_values": in.YComponent,
		"input_latitude_values":    in.Latitudes,
		"input_longitude_values":   in.Longitudes,
		"input_metadata":           in.Metadata,
	}
}
