package earclip

// ringNode is one slot in the ear clipper's cyclic arena: a doubly-linked
// ring of points addressed by slot index rather than pointer, so a cursor
// (a plain int) survives every removal except that of the node it points
// to. Removing a node never shifts other slots, which keeps removal O(1)
// instead of the O(n) an index-shift array erase would cost.
type ringNode struct {
	point      Point
	prev, next int
}

type cyclicRing struct {
	nodes []ringNode
	alive []bool
	size  int
}

func newCyclicRing(points []Point) *cyclicRing {
	n := len(points)
	nodes := make([]ringNode, n)
	alive := make([]bool, n)
	for i, p := range points {
		nodes[i] = ringNode{
			point: p,
			prev:  (i - 1 + n) % n,
			next:  (i + 1) % n,
		}
		alive[i] = true
	}
	return &cyclicRing{nodes: nodes, alive: alive, size: n}
}

func (r *cyclicRing) next(i int) int { return r.nodes[i].next }
func (r *cyclicRing) prev(i int) int { return r.nodes[i].prev }

// remove excises node i from the ring, relinking its neighbors. i must not
// be removed twice.
func (r *cyclicRing) remove(i int) {
	p, n := r.nodes[i].prev, r.nodes[i].next
	r.nodes[p].next = n
	r.nodes[n].prev = p
	r.alive[i] = false
	r.size--
}

// firstAlive returns an arbitrary surviving node index, preferring the
// lowest slot. Any alive index is an equally valid cursor: points and
// RingVertexOrder both traverse the full cycle regardless of start.
func (r *cyclicRing) firstAlive() int {
	for i, ok := range r.alive {
		if ok {
			return i
		}
	}
	return 0
}

// collapseSweep runs removeEmptyLoops once across every surviving node
// (the pre-pass the reference implementation makes before computing the
// ring's rotation), so that rotation is determined from the fully
// collapsed ring rather than one still containing cut-vertex duplicates.
func (r *cyclicRing) collapseSweep(start int) int {
	cur := start
	for steps := 0; steps < len(r.nodes) && r.size > 3; steps++ {
		cur = r.removeEmptyLoops(cur)
		cur = r.next(cur)
	}
	return cur
}

// points returns the ring's current points in cyclic order, starting at
// start.
func (r *cyclicRing) points(start int) []Point {
	out := make([]Point, 0, r.size)
	for i := start; ; {
		out = append(out, r.nodes[i].point)
		i = r.next(i)
		if i == start {
			break
		}
	}
	return out
}

// removeEmptyLoops collapses the "X Y X" bridges a planar outer-face walk
// produces around cut vertices, scanning outward from cursor a. All three
// checks below are cyclic; the loop runs only while more than 3 nodes
// remain, because in a 3-node ring next(next(a)) is prev(a), so each check
// would compare two neighbouring nodes rather than the ends of a bridge.
func (r *cyclicRing) removeEmptyLoops(a int) int {
	changed := true
	for changed && r.size > 3 {
		changed = false

		b, c := r.next(a), r.next(r.next(a))
		if r.nodes[a].point == r.nodes[c].point {
			r.remove(b)
			r.remove(c)
			changed = true
		}
		if r.size < 3 {
			return a
		}

		b, c = r.prev(a), r.next(a)
		if r.nodes[b].point == r.nodes[c].point {
			r.remove(a)
			r.remove(c)
			a = b
			changed = true
		}
		if r.size < 3 {
			return a
		}

		b, c = r.prev(a), r.prev(r.prev(a))
		if r.nodes[c].point == r.nodes[a].point {
			r.remove(a)
			r.remove(b)
			a = c
			changed = true
		}
	}
	return a
}

// EarClip iteratively clips ear triangles from walk, a cyclic sequence that
// may revisit points at the bridges NormalizeRing's outer-face walk
// produces around cut vertices. It never fails: a ring with fewer than 3
// points, or one with no usable ear, yields a partial (possibly empty)
// result rather than an error.
func EarClip(walk []Point, opts ...Option) []Triangle {
	cfg := newConfig(opts...)
	return earClip(walk, cfg)
}

func earClip(walk []Point, cfg *Config) []Triangle {
	ring := newCyclicRing(walk)
	if ring.size < 3 {
		return nil
	}

	ring.collapseSweep(0)
	if ring.size < 3 {
		return nil
	}

	a := ring.firstAlive()
	rotation, err := RingVertexOrder(ring.points(a))
	if err != nil {
		return nil
	}
	cfg.trace("earclip.start", "points", ring.size, "rotation", rotation)

	var result []Triangle
	counter := 0
	for ring.size > 2 {
		limit := cfg.nonProgressLimit
		if limit <= 0 {
			limit = ring.size
		}
		if counter >= limit {
			break
		}
		counter++

		before := ring.size
		a = ring.removeEmptyLoops(a)
		if ring.size != before {
			counter = 0
			cfg.trace("earclip.collapsed", "removed", before-ring.size)
		}
		if ring.size <= 2 {
			break
		}

		b := ring.next(a)
		c := ring.next(b)
		t := Triangle{ring.nodes[a].point, ring.nodes[b].point, ring.nodes[c].point}

		order := TriangleVertexOrder(t)
		if order == NoArea {
			a = ring.next(a)
			continue
		}

		isEar := order == rotation
		if isEar {
			for v := ring.next(c); v != a; v = ring.next(v) {
				if PointStrictlyInTriangle(t, ring.nodes[v].point) {
					isEar = false
					break
				}
			}
		}

		if isEar {
			cfg.trace("earclip.clip", "triangle", t)
			result = append(result, t)
			ring.remove(b)
			counter = 0
		} else {
			a = ring.next(a)
		}
	}

	return result
}
