package earclip

// Triangulate runs the full pipeline on ring: normalize it into a walk
// around the outer face of its planar subdivision, then ear-clip that walk
// into triangles. It never returns an error — malformed or degenerate input
// (fewer than 3 effective points, an all-collinear ring, a walk the ear
// clipper gets stuck on) yields a partial or empty result, per the
// package's error handling design.
func Triangulate(ring []Point, opts ...Option) []Triangle {
	cfg := newConfig(opts...)
	cfg.trace("triangulate.start", "points", len(ring))

	walk := normalizeRing(ring, cfg)
	cfg.trace("triangulate.normalized", "points", len(walk))
	if len(walk) < 3 {
		return nil
	}

	result := earClip(walk, cfg)
	cfg.trace("triangulate.done", "triangles", len(result))
	return result
}
