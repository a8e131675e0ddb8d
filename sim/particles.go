// Package sim implements the procedural generators and per-frame simulators
// for the galaxy scene: the barred-spiral star field, the dark-matter height
// surface, the traveling Great Wave, the wave-particle cloud with its
// connection graph, the background starfield and the orbital zone markers.
//
// Every generator takes an injected *rand.Rand so generation is reproducible
// under a fixed seed. Per-frame updates are pure given (state, elapsed,
// parameters): calling an update twice with the same elapsed value leaves
// buffers bit-identical. Nothing in this package blocks, spawns goroutines
// or logs.
package sim

// ParticleSet holds one visual layer's particles as flat buffers: positions
// as x,y,z triples and colors as r,g,b triples in [0,1], particle i at
// offset 3i. Order is fixed at creation; connection graphs reference
// particles by index, so the buffers are only ever mutated in place, never
// reordered or resized.
type ParticleSet struct {
	positions []float32
	colors    []float32
}

// NewParticleSet allocates a set of n particles at the origin with black
// color. Non-positive n yields an empty set.
func NewParticleSet(n int) *ParticleSet {
	if n <= 0 {
		return &ParticleSet{}
	}
	return &ParticleSet{
		positions: make([]float32, 3*n),
		colors:    make([]float32, 3*n),
	}
}

// Len returns the number of particles.
func (s *ParticleSet) Len() int {
	return len(s.positions) / 3
}

// Positions returns the live position buffer (len 3N). Callers outside this
// package must treat it as read-only; per-frame mutation happens in place
// through the owning simulator.
func (s *ParticleSet) Positions() []float32 {
	return s.positions
}

// Colors returns the live color buffer (len 3N), read-only to callers.
func (s *ParticleSet) Colors() []float32 {
	return s.colors
}

// At returns particle i's position.
func (s *ParticleSet) At(i int) (x, y, z float32) {
	return s.positions[3*i], s.positions[3*i+1], s.positions[3*i+2]
}

func (s *ParticleSet) setPosition(i int, x, y, z float64) {
	s.positions[3*i] = float32(x)
	s.positions[3*i+1] = float32(y)
	s.positions[3*i+2] = float32(z)
}

func (s *ParticleSet) setColor(i int, r, g, b float32) {
	s.colors[3*i] = r
	s.colors[3*i+1] = g
	s.colors[3*i+2] = b
}
