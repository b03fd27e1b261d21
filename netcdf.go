package metplot

import (
	"fmt"
	"reflect"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// Dimension-name aliases normalized at load time so the collapse logic only
// has to know "lon"/"lat".
var dimAliases = map[string]string{
	"latitude":  dimLat,
	"longitude": dimLon,
}

// OpenArray reads one variable and its coordinates from a NetCDF file into
// a DataArray. Values of any numeric element type are coerced to float64.
// Coordinate variables for the lat/lon dimensions are required; other
// dimensions may be coordinate-less (they still collapse by index).
func OpenArray(path, varname string) (*DataArray, error) {
	g, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer g.Close()
	return loadArray(g, varname)
}

// ListVariables returns the variable names in a NetCDF file.
func ListVariables(path string) ([]string, error) {
	g, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer g.Close()
	return g.ListVariables(), nil
}

// loadArray builds a DataArray from an open NetCDF group.
func loadArray(g api.Group, varname string) (*DataArray, error) {
	vr, err := g.GetVariable(varname)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", varname, err)
	}
	shape, vals, err := flattenValues(vr.Values)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", varname, err)
	}

	dims := make([]string, len(vr.Dimensions))
	coords := make(map[string][]float64, len(dims))
	for k, raw := range vr.Dimensions {
		name := raw
		if alias, ok := dimAliases[raw]; ok {
			name = alias
		}
		dims[k] = name

		cv, err := g.GetVariable(raw)
		if err != nil {
			if name == dimLat || name == dimLon {
				return nil, fmt.Errorf("variable %q: no coordinate variable for %q: %w",
					varname, raw, err)
			}
			continue // non-spatial dims collapse by index, coords optional
		}
		cshape, cvals, err := flattenValues(cv.Values)
		if err != nil || len(cshape) != 1 {
			if name == dimLat || name == dimLon {
				return nil, fmt.Errorf("variable %q: coordinate %q is not a 1-D numeric vector",
					varname, raw)
			}
			// e.g. string-typed time labels; the dim still collapses by index.
			Logger().Debug("skipping unusable coordinate", "var", varname, "dim", raw)
			continue
		}
		coords[name] = cvals
	}

	Logger().Info("loaded NetCDF variable",
		"var", varname, "dims", dims, "shape", shape)
	return &DataArray{
		Name:   varname,
		Dims:   dims,
		Coords: coords,
		Attrs:  attrsToMetadata(vr.Attributes),
		Data:   &Array{Shape: shape, Vals: vals},
	}, nil
}

// attrsToMetadata copies a NetCDF attribute map into Metadata. Attribute
// order is dropped; Metadata is unordered.
func attrsToMetadata(am api.AttributeMap) Metadata {
	if am == nil {
		return Metadata{}
	}
	md := make(Metadata)
	for _, k := range am.Keys() {
		if v, has := am.Get(k); has {
			md[k] = v
		}
	}
	return md
}

// flattenValues converts the nested-slice value form returned by the NetCDF
// reader ([]float32, [][]float64, [][][]int16, ...) into row-major float64
// storage plus a shape vector. Scalars yield an empty shape and one value.
// Inner slices are assumed rectangular, as NetCDF guarantees.
func flattenValues(v any) ([]int, []float64, error) {
	rv := reflect.ValueOf(v)
	var shape []int
	probe := rv
	for probe.Kind() == reflect.Slice || probe.Kind() == reflect.Array {
		shape = append(shape, probe.Len())
		if probe.Len() == 0 {
			return shape, nil, nil
		}
		probe = probe.Index(0)
	}
	if !isNumericKind(probe.Kind()) {
		return nil, nil, fmt.Errorf("unsupported element type %s", probe.Kind())
	}

	n := 1
	for _, s := range shape {
		n *= s
	}
	vals := make([]float64, 0, n)
	var walk func(x reflect.Value, depth int)
	walk = func(x reflect.Value, depth int) {
		if depth == len(shape) {
			vals = append(vals, numToFloat64(x))
			return
		}
		for i := 0; i < x.Len(); i++ {
			walk(x.Index(i), depth+1)
		}
	}
	walk(rv, 0)
	return shape, vals, nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func numToFloat64(x reflect.Value) float64 {
	switch x.Kind() {
	case reflect.Float32, reflect.Float64:
		return x.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(x.Uint())
	default:
		return float64(x.Int())
	}
}
