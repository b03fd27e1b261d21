package metplot

import (
	"encoding/binary"
	"math"
	"testing"
)

// gridFromBytes builds a nj x ni grid from fuzz data, mapping every 8 bytes
// to a float64 bit pattern so NaN and Inf payloads occur naturally.
func gridFromBytes(data []byte, nj, ni int) *Array {
	vals := make([]float64, nj*ni)
	for i := range vals {
		off := (i * 8) % max(len(data), 1)
		var buf [8]byte
		copy(buf[:], data[off:])
		vals[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[:]))
	}
	return NewArray(vals, nj, ni)
}

// FuzzNewVector feeds arbitrary grid contents and strides to NewVector.
// The invariant is that it must never panic, and any non-nil result holds
// only finite, co-sized point slices.
// Run with: go test -fuzz=FuzzNewVector -fuzztime=60s ./...
func FuzzNewVector(f *testing.F) {
	f.Add([]byte{0x7f, 0xf8, 0, 0, 0, 0, 0, 0}, uint8(4), uint8(4), 1)
	f.Add([]byte{}, uint8(1), uint8(1), 0)
	f.Add([]byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, uint8(8), uint8(3), 3)
	f.Add([]byte{0xff}, uint8(60), uint8(30), -2)

	f.Fuzz(func(t *testing.T, data []byte, njb, nib uint8, skip int) {
		nj := int(njb)%16 + 1
		ni := int(nib)%16 + 1
		u := gridFromBytes(data, nj, ni)
		v := gridFromBytes(data, nj, ni)
		lon := make([]float64, ni)
		lat := make([]float64, nj)
		for i := range lon {
			lon[i] = float64(i)
		}
		for j := range lat {
			lat[j] = float64(j)
		}

		in := NewVector(u, v, lon, lat, skip, nil)
		if in == nil {
			return
		}
		n := len(in.XComponent)
		if len(in.YComponent) != n || len(in.Latitudes) != n || len(in.Longitudes) != n {
			t.Fatalf("point slices not co-sized: %d/%d/%d/%d",
				n, len(in.YComponent), len(in.Latitudes), len(in.Longitudes))
		}
		for i := 0; i < n; i++ {
			if !isFinite(in.XComponent[i]) || !isFinite(in.YComponent[i]) {
				t.Fatalf("non-finite point %d survived filtering", i)
			}
		}
		if n > nj*ni {
			t.Fatalf("%d points from a %dx%d grid", n, nj, ni)
		}
	})
}

// FuzzStride feeds arbitrary vector lengths and regions to Stride.
// The invariant: never panic, never negative, zero only for empty input.
// Run with: go test -fuzz=FuzzStride -fuzztime=30s ./...
func FuzzStride(f *testing.F) {
	f.Add(uint16(120), uint16(60), 0.0, 100.0, 0.0, 50.0, false)
	f.Add(uint16(0), uint16(0), 0.0, 0.0, 0.0, 0.0, true)
	f.Add(uint16(1440), uint16(721), -180.0, 180.0, -90.0, 90.0, true)

	f.Fuzz(func(t *testing.T, nlonw, nlatw uint16, lo1, lo2, la1, la2 float64, useRegion bool) {
		nlon := int(nlonw) % 2048
		nlat := int(nlatw) % 2048
		lon := make([]float64, nlon)
		lat := make([]float64, nlat)
		for i := range lon {
			lon[i] = float64(i)
		}
		for j := range lat {
			lat[j] = float64(j)
		}
		var region *Region
		if useRegion {
			region = &Region{LonMin: lo1, LonMax: lo2, LatMin: la1, LatMax: la2}
		}
		got := Stride(lon, lat, region)
		if got < 0 {
			t.Fatalf("negative stride %d", got)
		}
		if region == nil && nlon > 0 && got == 0 {
			t.Fatalf("zero stride for %d longitudes without a region", nlon)
		}
	})
}
