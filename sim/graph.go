package sim

// ConnectionGraph is a fixed set of particle index pairs that sat within a
// distance threshold when the graph was built. Pairs are stored i,j
// interleaved with i < j, in discovery order of the ascending index scan.
// The set never changes afterwards: endpoints move with the particle set
// and pairs are deliberately not re-evaluated, so connection lines stretch
// between originally-qualifying particles as they drift apart.
type ConnectionGraph struct {
	pairs []uint32
}

// BuildConnectionGraph scans all unordered index pairs of the position
// buffer in index order and collects those strictly closer than
// connectionDistance, stopping both loops the moment maxConnections pairs
// exist. O(N²) worst case bounded by the cap; this runs once per
// configuration, never per frame.
//
// A non-positive connectionDistance yields an empty graph; a non-positive
// maxConnections yields an empty graph without scanning.
func BuildConnectionGraph(positions []float32, connectionDistance float64, maxConnections int) *ConnectionGraph {
	g := &ConnectionGraph{}
	if maxConnections <= 0 || connectionDistance <= 0 {
		return g
	}

	n := len(positions) / 3
	maxSq := connectionDistance * connectionDistance

	capHint := maxConnections
	if capHint > 1024 {
		capHint = 1024
	}
	g.pairs = make([]uint32, 0, 2*capHint)

scan:
	for i := 0; i < n; i++ {
		xi := float64(positions[3*i])
		yi := float64(positions[3*i+1])
		zi := float64(positions[3*i+2])
		for j := i + 1; j < n; j++ {
			dx := float64(positions[3*j]) - xi
			dy := float64(positions[3*j+1]) - yi
			dz := float64(positions[3*j+2]) - zi
			if dx*dx+dy*dy+dz*dz < maxSq {
				g.pairs = append(g.pairs, uint32(i), uint32(j))
				if g.Len() >= maxConnections {
					break scan
				}
			}
		}
	}
	return g
}

// Len returns the number of connection pairs.
func (g *ConnectionGraph) Len() int {
	return len(g.pairs) / 2
}

// Indices returns the flat index buffer, two entries per line segment,
// fixed after construction.
func (g *ConnectionGraph) Indices() []uint32 {
	return g.pairs
}
