package earclip

// NormalizeRing computes all self-intersections of ring's edges, splits
// edges at those intersections, and walks the outer face of the resulting
// planar subdivision into a single cyclic walk. The walk may revisit a
// point several times at cut vertices; it is the input EarClip expects, not
// a list of triangles.
//
// ring may optionally repeat its first point as a trailing element; that
// duplicate is stripped. A ring of fewer than 2 points, or one that is a
// single point once that duplicate is stripped, yields an empty walk.
func NormalizeRing(ring []Point, opts ...Option) []Point {
	cfg := newConfig(opts...)
	return normalizeRing(ring, cfg)
}

func normalizeRing(ring []Point, cfg *Config) []Point {
	if len(ring) < 2 {
		return nil
	}

	if ring[len(ring)-1] == ring[0] {
		ring = ring[:len(ring)-1]
		if len(ring) == 1 {
			return nil
		}
	}

	sub := buildSubdivision(ring, cfg)
	order := traverseOuterFace(sub, cfg)

	walk := make([]Point, len(order))
	for i, id := range order {
		walk[i] = sub.point(id)
	}
	return walk
}
