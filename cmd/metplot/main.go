// Command metplot renders scalar or wind maps from NetCDF files.
//
// Usage:
//
//	metplot -in data.nc -var t2m -o temp.png
//	metplot -in data.nc -u u10 -v v10 -o wind.png
//	metplot -in data.nc -list
//
// Examples:
//
//	metplot -in gfs.nc -var t2m
//	metplot -in gfs.nc -u u10 -v v10 -skip 0 -region "70,140,10,60"
//	metplot -in gfs.nc -var t2m -style style.toml -verbose
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/geal-ai/metplot"
)

func main() {
	inPath := flag.String("in", "", "Input NetCDF file (required)")
	varName := flag.String("var", "", "Scalar variable to plot")
	uName := flag.String("u", "", "U wind component variable")
	vName := flag.String("v", "", "V wind component variable")
	outPath := flag.String("o", "map.png", "Output PNG path")
	skip := flag.Int("skip", 0, "Wind subsampling stride (0 = auto from grid size)")
	regionStr := flag.String("region", "", "Stride region: lonmin,lonmax,latmin,latmax")
	stylePath := flag.String("style", "", "TOML style file (optional)")
	listVars := flag.Bool("list", false, "List the file's variables and exit")
	verbose := flag.Bool("verbose", false, "Enable debug logging to stderr")
	flag.Usage = usage
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "error: -in is required")
		usage()
		os.Exit(2)
	}

	if *verbose {
		metplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *listVars {
		names, err := metplot.ListVariables(*inPath)
		if err != nil {
			fatalf("%v", err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		os.Exit(0)
	}

	if err := metplot.EnsureRenderer(); err != nil {
		fmt.Fprintln(os.Stderr, metplot.InstallHint)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	style := metplot.DefaultStyle()
	if *stylePath != "" {
		var err error
		style, err = metplot.LoadStyle(*stylePath)
		if err != nil {
			fatalf("%v", err)
		}
	}

	region, err := parseRegion(*regionStr)
	if err != nil {
		fatalf("invalid -region %q: %v", *regionStr, err)
	}

	switch {
	case *uName != "" && *vName != "":
		renderWind(*inPath, *uName, *vName, *outPath, *skip, region, style)
	case *varName != "":
		renderScalar(*inPath, *varName, *outPath, style)
	default:
		fmt.Fprintln(os.Stderr, "error: give either -var, or both -u and -v")
		usage()
		os.Exit(2)
	}
}

func renderScalar(inPath, varName, outPath string, style *metplot.Style) {
	da, err := metplot.OpenArray(inPath, varName)
	if err != nil {
		fatalf("%v", err)
	}
	in := metplot.ScalarFromArray(da, nil)
	dc, err := metplot.RenderScalar(in, style)
	if err != nil {
		fatalf("%v", err)
	}
	if err := dc.SavePNG(outPath); err != nil {
		fatalf("writing %s: %v", outPath, err)
	}
	fmt.Printf("wrote %s (%s)\n", outPath, varName)
}

func renderWind(inPath, uName, vName, outPath string, skip int, region *metplot.Region, style *metplot.Style) {
	u, err := metplot.OpenArray(inPath, uName)
	if err != nil {
		fatalf("%v", err)
	}
	v, err := metplot.OpenArray(inPath, vName)
	if err != nil {
		fatalf("%v", err)
	}

	if skip <= 0 {
		skip = metplot.Stride(u.Lon(), u.Lat(), region)
		if skip < 1 {
			skip = 1
		}
	}

	in := metplot.VectorFromArrays(u, v, skip, nil)
	if in == nil {
		fmt.Fprintln(os.Stderr, "no finite wind points to draw; writing empty map")
	}
	dc, err := metplot.RenderVector(in, style)
	if err != nil {
		fatalf("%v", err)
	}
	if err := dc.SavePNG(outPath); err != nil {
		fatalf("writing %s: %v", outPath, err)
	}
	fmt.Printf("wrote %s (%s/%s, skip %d)\n", outPath, uName, vName, skip)
}

// parseRegion parses "lonmin,lonmax,latmin,latmax". Empty input means no
// region restriction.
func parseRegion(s string) (*metplot.Region, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("want 4 comma-separated values, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = f
	}
	return &metplot.Region{
		LonMin: vals[0], LonMax: vals[1],
		LatMin: vals[2], LatMax: vals[3],
	}, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `metplot - render scalar or wind maps from NetCDF files

Usage:
  metplot -in data.nc -var NAME [-o out.png]
  metplot -in data.nc -u UNAME -v VNAME [-skip N] [-region R]
  metplot -in data.nc -list

Flags:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  metplot -in gfs.nc -var t2m
  metplot -in gfs.nc -u u10 -v v10 -skip 0 -region "70,140,10,60"
  metplot -in gfs.nc -var t2m -style style.toml -verbose`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
