package metplot

import (
	"math"
	"reflect"
	"testing"
)

func TestSqueeze(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		want  []int
	}{
		{"already 2-D", []int{3, 4}, []int{3, 4}},
		{"leading singleton", []int{1, 3, 4}, []int{3, 4}},
		{"trailing singleton", []int{3, 4, 1}, []int{3, 4}},
		{"both ends", []int{1, 3, 4, 1}, []int{3, 4}},
		{"interior singleton", []int{3, 1, 4}, []int{3, 4}},
		{"all singleton", []int{1, 1, 1}, []int{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := 1
			for _, s := range tc.shape {
				n *= s
			}
			a := NewArray(make([]float64, n), tc.shape...)
			got := a.Squeeze()
			if !reflect.DeepEqual(got.Shape, tc.want) {
				t.Errorf("Squeeze(%v) shape = %v, want %v", tc.shape, got.Shape, tc.want)
			}
			if len(got.Vals) != n {
				t.Errorf("Squeeze(%v) kept %d values, want %d", tc.shape, len(got.Vals), n)
			}
		})
	}
}

func TestFrom2D(t *testing.T) {
	a := From2D([][]float64{{1, 2, 3}, {4, 5, 6}})
	if !reflect.DeepEqual(a.Shape, []int{2, 3}) {
		t.Fatalf("shape = %v, want [2 3]", a.Shape)
	}
	if !reflect.DeepEqual(a.Vals, []float64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("vals = %v", a.Vals)
	}
}

func TestNewArrayFloat32(t *testing.T) {
	a := NewArrayFloat32([]float32{1.5, -2, 3}, 3)
	if !reflect.DeepEqual(a.Vals, []float64{1.5, -2, 3}) {
		t.Errorf("vals = %v", a.Vals)
	}
}

func TestMeshgrid(t *testing.T) {
	lon := []float64{10, 20, 30}
	lat := []float64{1, 2}
	lon2, lat2 := meshgrid(lon, lat)

	wantShape := []int{2, 3}
	if !reflect.DeepEqual(lon2.Shape, wantShape) || !reflect.DeepEqual(lat2.Shape, wantShape) {
		t.Fatalf("shapes = %v, %v, want %v", lon2.Shape, lat2.Shape, wantShape)
	}
	if !reflect.DeepEqual(lon2.Vals, []float64{10, 20, 30, 10, 20, 30}) {
		t.Errorf("lon mesh = %v", lon2.Vals)
	}
	if !reflect.DeepEqual(lat2.Vals, []float64{1, 1, 1, 2, 2, 2}) {
		t.Errorf("lat mesh = %v", lat2.Vals)
	}
}

func TestStrideSlice(t *testing.T) {
	// 3x4 grid, values = row*10 + col.
	a := From2D([][]float64{
		{0, 1, 2, 3},
		{10, 11, 12, 13},
		{20, 21, 22, 23},
	})
	tests := []struct {
		skip      int
		wantShape []int
		wantVals  []float64
	}{
		{1, []int{3, 4}, []float64{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23}},
		{2, []int{2, 2}, []float64{0, 2, 20, 22}},
		{3, []int{1, 2}, []float64{0, 3}},
		{4, []int{1, 1}, []float64{0}},
	}
	for _, tc := range tests {
		got := strideSlice(a, tc.skip)
		if !reflect.DeepEqual(got.Shape, tc.wantShape) {
			t.Errorf("strideSlice(skip=%d) shape = %v, want %v", tc.skip, got.Shape, tc.wantShape)
		}
		if !reflect.DeepEqual(got.Vals, tc.wantVals) {
			t.Errorf("strideSlice(skip=%d) vals = %v, want %v", tc.skip, got.Vals, tc.wantVals)
		}
	}
}

// A squeezed single-row or single-column grid reaches strideSlice as a
// rank-1 array; it must subsample like a single row, not panic.
func TestStrideSliceRank1(t *testing.T) {
	a := NewArray([]float64{0, 1, 2, 3, 4}, 5)
	tests := []struct {
		skip     int
		wantVals []float64
	}{
		{1, []float64{0, 1, 2, 3, 4}},
		{2, []float64{0, 2, 4}},
		{5, []float64{0}},
	}
	for _, tc := range tests {
		got := strideSlice(a, tc.skip)
		if !reflect.DeepEqual(got.Vals, tc.wantVals) {
			t.Errorf("strideSlice(rank-1, skip=%d) vals = %v, want %v",
				tc.skip, got.Vals, tc.wantVals)
		}
	}
}

func TestNormLon(t *testing.T) {
	tests := []struct {
		lon  float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{181, -179},
		{270, -90},
		{360, 0},
		{-10, -10},
	}
	for _, tc := range tests {
		if got := NormLon(tc.lon); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormLon(%.1f) = %.6f, want %.6f", tc.lon, got, tc.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if isFinite(math.NaN()) || isFinite(math.Inf(1)) || isFinite(math.Inf(-1)) {
		t.Error("NaN/Inf must not be finite")
	}
	if !isFinite(0) || !isFinite(-1e300) {
		t.Error("ordinary values must be finite")
	}
}
