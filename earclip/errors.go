package earclip

import "errors"

// Sentinel errors returned by the white-box predicate entry points. The
// façade Triangulate never returns an error: malformed or degenerate
// geometry degrades to a partial or empty result instead (see RingVertexOrder
// and Intersection for the two places these actually surface).
var (
	// ErrInvalidGeometry is returned by predicates that require a minimally
	// valid shape, such as RingVertexOrder on a ring of fewer than 3 points.
	ErrInvalidGeometry = errors.New("earclip: invalid geometry")

	// ErrNoIntersection is returned by Intersection when the two lines are
	// parallel (or coincident) and have no unique crossing point.
	ErrNoIntersection = errors.New("earclip: no intersection")
)
