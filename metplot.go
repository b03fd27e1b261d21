// Package metplot reshapes meteorological gridded data into the flat input
// records consumed by a 2-D geographical plotting backend. It handles raw
// arrays (scalar fields, u/v wind components) and labeled datasets with named
// axes, computes a display-appropriate subsampling stride for vector fields,
// strips non-finite points from vector fields, and renders the prepared
// records to raster maps via github.com/gogpu/gg.
package metplot

// Metadata carries descriptive key/value pairs (units, display name, ...)
// alongside a field. It is forwarded to the plotting backend unchanged and
// never validated against a schema.
type Metadata map[string]any

// DefaultVectorMetadata returns the metadata applied to vector fields when
// the caller supplies none. A fresh map is built on every call so callers
// can mutate the result freely.
func DefaultVectorMetadata() Metadata {
	return Metadata{
		"units":     "m/s",
		"long_name": "wind field",
	}
}
