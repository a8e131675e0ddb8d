package sim

import (
	"math"
	"testing"
)

func TestDisplacementPure(t *testing.T) {
	for _, p := range [][3]float64{{3, -4, 0.5}, {0, 12, 9.25}, {-7.5, -7.5, 123.456}} {
		a := Displacement(p[0], p[1], p[2], 2.6, 18, 0.9)
		b := Displacement(p[0], p[1], p[2], 2.6, 18, 0.9)
		if a != b {
			t.Fatalf("displacement(%v) not reproducible: %v vs %v", p, a, b)
		}
	}
}

func TestDisplacementZeroAmplitude(t *testing.T) {
	for x := -50.0; x <= 50; x += 12.5 {
		for z := -50.0; z <= 50; z += 12.5 {
			for _, elapsed := range []float64{0, 1.5, 100} {
				if d := Displacement(x, z, elapsed, 0, 18, 0.9); d != 0 {
					t.Fatalf("zero amplitude produced %v at (%v,%v,t=%v)", d, x, z, elapsed)
				}
			}
		}
	}
}

func TestDisplacementOriginFinite(t *testing.T) {
	for _, elapsed := range []float64{0, 0.1, 33.3, 1e6} {
		d := Displacement(0, 0, elapsed, 2.6, 18, 0.9)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("displacement at origin not finite for t=%v: %v", elapsed, d)
		}
	}
}

func TestDisplacementZeroWaveLength(t *testing.T) {
	d := Displacement(10, 10, 1, 2.6, 0, 0.9)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Fatalf("zero wavelength produced non-finite displacement: %v", d)
	}
}

func TestDisplacementAmplitudeBound(t *testing.T) {
	// Radial term is bounded by amplitude, angular by 0.3 of it.
	const amp = 2.0
	for x := -60.0; x <= 60; x += 7.3 {
		for z := -60.0; z <= 60; z += 7.3 {
			d := Displacement(x, z, 4.2, amp, 18, 0.9)
			if math.Abs(d) > 1.3*amp+1e-12 {
				t.Fatalf("displacement %v exceeds 1.3x amplitude at (%v,%v)", d, x, z)
			}
		}
	}
}

func TestDisplacementRadialPeriod(t *testing.T) {
	// Along the positive X axis the angular term is constant, so points one
	// wavelength apart see the same displacement.
	const wl = 18.0
	for _, d0 := range []float64{5, 20, 41.5} {
		a := Displacement(d0, 0, 2.5, 2.6, wl, 0.9)
		b := Displacement(d0+wl, 0, 2.5, 2.6, wl, 0.9)
		if math.Abs(a-b) > 1e-9 {
			t.Fatalf("period broken along x axis: %v vs %v at dist %v", a, b, d0)
		}
	}
}
