package earclip

import "sort"

// edgeRef is the (from, to) endpoint pair of one edge in the subdivision's
// edge table. deleted tombstones an edge that has either been replaced by a
// split (during construction) or consumed by the outer-face walk (during
// traversal): both phases reuse the same table and the same flag.
type edgeRef struct {
	from, to int
	deleted  bool
}

// incidence is one entry in a node's adjacency list: the neighbor reached
// and the edge table index of the edge used to reach it.
type incidence struct {
	neighbor int
	edgeID   int
}

// subdivision is the planar multigraph built by buildSubdivision: the
// interned nodes, the (possibly split, possibly tombstoned) edge table, and
// per-node adjacency lists ready for the angle-sorted outer-face walk.
type subdivision struct {
	interner  *interner
	edges     []edgeRef
	adjacency [][]incidence
	startNode int
}

func (s *subdivision) point(id int) Point {
	return s.interner.point(id)
}

// buildSubdivision turns ring's edges into a planar subdivision: it finds
// every proper pairwise intersection, splits the intersecting edges at
// their crossings, and builds adjacency lists over the resulting edge
// multiset. ring must already be preprocessed (no trailing duplicate of the
// first point) and have at least 2 points.
func buildSubdivision(ring []Point, cfg *Config) *subdivision {
	in := newInterner()
	for _, p := range ring {
		in.intern(p)
	}

	var edges []edgeRef
	n := len(ring)
	for i := 0; i+1 < n; i++ {
		from, to := in.intern(ring[i]), in.intern(ring[i+1])
		if from == to {
			continue
		}
		edges = append(edges, edgeRef{from: from, to: to})
	}
	// Closing edge, intentionally stored (first, last) rather than
	// (last, first); undirected semantics make either orientation valid,
	// but this matches the reference implementation exactly.
	if first, last := in.intern(ring[0]), in.intern(ring[n-1]); first != last {
		edges = append(edges, edgeRef{from: first, to: last})
	}

	cfg.trace("subdivision.edges", "count", len(edges))

	splitPoints := make(map[int][]Point)
	for i := 0; i < len(edges); i++ {
		a, b := in.point(edges[i].from), in.point(edges[i].to)
		for j := i + 1; j < len(edges); j++ {
			c, d := in.point(edges[j].from), in.point(edges[j].to)
			if !ProperIntersects(a, b, c, d) {
				continue
			}
			p, err := Intersection(a, b, c, d)
			if err != nil {
				// Unreachable: ProperIntersects being true guarantees a
				// well-defined crossing.
				continue
			}
			in.intern(p)
			splitPoints[i] = append(splitPoints[i], p)
			splitPoints[j] = append(splitPoints[j], p)
		}
	}

	splitEdges := make([]int, 0, len(splitPoints))
	for e := range splitPoints {
		splitEdges = append(splitEdges, e)
	}
	sort.Ints(splitEdges)

	for _, e := range splitEdges {
		points := append([]Point{in.point(edges[e].from), in.point(edges[e].to)}, splitPoints[e]...)
		sort.Slice(points, func(i, j int) bool { return pointLess(points[i], points[j]) })

		edges[e].deleted = true
		for i := 0; i+1 < len(points); i++ {
			from, to := in.intern(points[i]), in.intern(points[i+1])
			if from == to {
				continue
			}
			edges = append(edges, edgeRef{from: from, to: to})
		}
	}

	cfg.trace("subdivision.split", "edges", len(edges), "splitOriginals", len(splitEdges))

	adjacency := make([][]incidence, in.len())
	var mostLeft Point
	haveMostLeft := false
	for i, e := range edges {
		if e.deleted {
			continue
		}
		adjacency[e.from] = append(adjacency[e.from], incidence{neighbor: e.to, edgeID: i})
		adjacency[e.to] = append(adjacency[e.to], incidence{neighbor: e.from, edgeID: i})

		for _, id := range [2]int{e.from, e.to} {
			p := in.point(id)
			if !haveMostLeft || pointLess(p, mostLeft) {
				mostLeft = p
				haveMostLeft = true
			}
		}
	}

	start := 0
	if haveMostLeft {
		start = in.intern(mostLeft)
	}

	return &subdivision{
		interner:  in,
		edges:     edges,
		adjacency: adjacency,
		startNode: start,
	}
}
