// Package earclip triangulates arbitrary, possibly self-intersecting closed
// rings of 2D points.
//
// The pipeline has two stages: normalization walks the planar subdivision
// induced by the ring's self-intersections into a single cyclic walk around
// its outer face (NormalizeRing), and ear-clipping repeatedly excises ear
// triangles from that walk (EarClip). Triangulate runs both and is the only
// entry point most callers need; the stage functions and the geometry
// predicates they're built on are exported for white-box testing.
//
// The package holds no state across calls and performs no I/O. Points are
// github.com/go-gl/mathgl/mgl64.Vec2 values under a y-down coordinate
// convention: positive signed area means clockwise.
package earclip
