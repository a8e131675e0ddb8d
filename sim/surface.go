package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// planarSpan is the full X/Z extent of the flat dark-matter surface.
const planarSpan = 100.0

// SurfaceGrid is a (segments+1)² vertex grid with a triangle index buffer
// fixed at construction: cell (i,j) splits into (a, b, a+1) and
// (b, b+1, a+1) with a = i*(segments+1)+j and b = a+segments+1. Per-frame
// updates rewrite vertex heights in place and recompute vertex normals;
// X/Z coordinates and the index buffer never change.
type SurfaceGrid struct {
	Segments  int
	Wireframe bool // render intent, used by the annulus variant

	positions []float32
	normals   []float32
	indices   []uint32
}

// NewPlanarSurface builds a flat grid spanning ±planarSpan/2 on X and Z at
// height zero. Segment counts below 1 are clamped to 1.
func NewPlanarSurface(segments int) *SurfaceGrid {
	g := newSurfaceGrid(segments)
	side := g.Segments + 1
	for i := 0; i < side; i++ {
		x := (float64(i)/float64(g.Segments) - 0.5) * planarSpan
		for j := 0; j < side; j++ {
			z := (float64(j)/float64(g.Segments) - 0.5) * planarSpan
			v := i*side + j
			g.positions[3*v] = float32(x)
			g.positions[3*v+2] = float32(z)
		}
	}
	g.recomputeNormals()
	return g
}

// NewAnnulusSurface builds a ring grid: rows map to radii across
// [innerRadius, outerRadius], columns sweep the full circle with the seam
// column duplicated so the index pattern matches the planar grid. The
// wireframe flag is carried to the renderer untouched.
func NewAnnulusSurface(segments int, innerRadius, outerRadius float64, wireframe bool) *SurfaceGrid {
	if outerRadius < innerRadius {
		innerRadius, outerRadius = outerRadius, innerRadius
	}
	if innerRadius < 0 {
		innerRadius = 0
	}

	g := newSurfaceGrid(segments)
	g.Wireframe = wireframe
	side := g.Segments + 1
	for i := 0; i < side; i++ {
		radius := innerRadius + (outerRadius-innerRadius)*float64(i)/float64(g.Segments)
		for j := 0; j < side; j++ {
			angle := 2 * math.Pi * float64(j) / float64(g.Segments)
			v := i*side + j
			g.positions[3*v] = float32(radius * math.Cos(angle))
			g.positions[3*v+2] = float32(radius * math.Sin(angle))
		}
	}
	g.recomputeNormals()
	return g
}

func newSurfaceGrid(segments int) *SurfaceGrid {
	if segments < 1 {
		segments = 1
	}
	side := segments + 1
	g := &SurfaceGrid{
		Segments:  segments,
		positions: make([]float32, 3*side*side),
		normals:   make([]float32, 3*side*side),
		indices:   make([]uint32, 0, segments*segments*6),
	}
	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			a := uint32(i*side + j)
			b := a + uint32(side)
			g.indices = append(g.indices, a, b, a+1, b, b+1, a+1)
		}
	}
	return g
}

// VertexCount returns the number of grid vertices, (segments+1)².
func (g *SurfaceGrid) VertexCount() int {
	return len(g.positions) / 3
}

// Positions returns the live vertex buffer (len 3V), read-only to callers.
func (g *SurfaceGrid) Positions() []float32 {
	return g.positions
}

// Normals returns the live normal buffer (len 3V), read-only to callers.
// Normals are recomputed on every height update.
func (g *SurfaceGrid) Normals() []float32 {
	return g.normals
}

// Indices returns the triangle index buffer, six entries per grid cell.
// Fixed after construction.
func (g *SurfaceGrid) Indices() []uint32 {
	return g.indices
}

// UpdateDarkMatter rewrites every vertex height from the four-wave
// superposition and recomputes normals. Only waveSpeed and intensity are
// live; intensity 0 zeroes every height exactly.
func (g *SurfaceGrid) UpdateDarkMatter(elapsed, waveSpeed, intensity float64) {
	t := elapsed * waveSpeed
	for v := 0; v < g.VertexCount(); v++ {
		x := float64(g.positions[3*v])
		z := float64(g.positions[3*v+2])
		dist := math.Hypot(x, z)
		h := intensity * (math.Sin(0.1*x+t) +
			math.Sin(0.1*z+0.6*t) +
			1.5*math.Sin(0.05*x+0.05*z+0.8*t) +
			0.75*math.Sin(0.1*dist-1.2*t))
		g.positions[3*v+1] = float32(h)
	}
	g.recomputeNormals()
}

// UpdateTraveling rewrites every vertex height from the traveling-wave
// kernel and recomputes normals. Amplitude, wavelength and speed are live.
func (g *SurfaceGrid) UpdateTraveling(elapsed, amplitude, waveLength, waveSpeed float64) {
	for v := 0; v < g.VertexCount(); v++ {
		x := float64(g.positions[3*v])
		z := float64(g.positions[3*v+2])
		g.positions[3*v+1] = float32(Displacement(x, z, elapsed, amplitude, waveLength, waveSpeed))
	}
	g.recomputeNormals()
}

// recomputeNormals accumulates area-weighted face normals per vertex and
// normalizes. Degenerate vertices fall back to straight up.
func (g *SurfaceGrid) recomputeNormals() {
	for i := range g.normals {
		g.normals[i] = 0
	}
	for k := 0; k+2 < len(g.indices); k += 3 {
		i0, i1, i2 := g.indices[k], g.indices[k+1], g.indices[k+2]
		p0 := g.vertex(i0)
		n := r3.Cross(r3.Sub(g.vertex(i1), p0), r3.Sub(g.vertex(i2), p0))
		g.addNormal(i0, n)
		g.addNormal(i1, n)
		g.addNormal(i2, n)
	}
	for v := 0; v < g.VertexCount(); v++ {
		n := r3.Vec{
			X: float64(g.normals[3*v]),
			Y: float64(g.normals[3*v+1]),
			Z: float64(g.normals[3*v+2]),
		}
		if r3.Norm(n) == 0 {
			n = r3.Vec{Y: 1}
		} else {
			n = r3.Unit(n)
		}
		g.normals[3*v] = float32(n.X)
		g.normals[3*v+1] = float32(n.Y)
		g.normals[3*v+2] = float32(n.Z)
	}
}

func (g *SurfaceGrid) vertex(i uint32) r3.Vec {
	return r3.Vec{
		X: float64(g.positions[3*i]),
		Y: float64(g.positions[3*i+1]),
		Z: float64(g.positions[3*i+2]),
	}
}

func (g *SurfaceGrid) addNormal(i uint32, n r3.Vec) {
	g.normals[3*i] += float32(n.X)
	g.normals[3*i+1] += float32(n.Y)
	g.normals[3*i+2] += float32(n.Z)
}
