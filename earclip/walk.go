package earclip

import (
	"math"
	"sort"
)

// traverseOuterFace walks the outer face of sub's planar subdivision and
// returns the visited node ids in push order: the normalized cyclic walk
// (still in node-id form; NormalizeRing converts it back to points).
//
// It runs in two passes over the same adjacency lists. The first (angular
// rotation) sorts each node's incidence list by the angle of the incoming
// edge, establishing a consistent rotational order per vertex; it never
// changes which edges are live. The second (the Eulerian walk) destructively
// consumes edges from the back of each node's incidence list, realizing
// "always turn as sharply as possible in one rotational direction" at every
// vertex.
func traverseOuterFace(sub *subdivision, cfg *Config) []int {
	sortIncidenceByAngle(sub)

	order := walkEulerian(sub)
	cfg.trace("walk.done", "nodes", len(order))
	return order
}

type dfsFrame struct {
	node int
	prev Point
}

// sortIncidenceByAngle does a single DFS from the leftmost-lowest node,
// sorting each node's incidence list by angle the first (and only) time it
// is visited. The synthetic predecessor for the start node sits infinitely
// far to the left at the same height, so the first vertex's angular frame
// is a consistent approach from the left.
func sortIncidenceByAngle(sub *subdivision) {
	visited := make([]bool, len(sub.adjacency))
	angles := make([]float64, len(sub.adjacency))

	startPoint := sub.point(sub.startNode)
	fakePrev := Point{math.Inf(-1), startPoint[1]}

	stack := []dfsFrame{{node: sub.startNode, prev: fakePrev}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[frame.node] {
			continue
		}
		visited[frame.node] = true

		nodePoint := sub.point(frame.node)
		neighbours := sub.adjacency[frame.node]
		for _, inc := range neighbours {
			angles[inc.neighbor] = AngleRad(frame.prev, nodePoint, sub.point(inc.neighbor))
		}
		sort.SliceStable(neighbours, func(i, j int) bool {
			return angles[neighbours[i].neighbor] < angles[neighbours[j].neighbor]
		})

		for _, inc := range neighbours {
			stack = append(stack, dfsFrame{node: inc.neighbor, prev: nodePoint})
		}
	}
}

// walkEulerian performs the back-to-front adjacency pop that realizes the
// outer-face walk, given incidence lists already sorted by angle.
func walkEulerian(sub *subdivision) []int {
	adjStart := sub.adjacency[sub.startNode]
	if len(adjStart) == 0 {
		return nil
	}

	type stackEntry struct {
		node, edgeID int
	}

	seed := adjStart[len(adjStart)-1]
	stack := []stackEntry{{node: seed.neighbor, edgeID: seed.edgeID}}

	var order []int
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if sub.edges[top.edgeID].deleted {
			continue
		}
		sub.edges[top.edgeID].deleted = true
		order = append(order, top.node)

		v := sub.adjacency[top.node]
		for len(v) > 0 {
			next := v[len(v)-1]
			v = v[:len(v)-1]
			if sub.edges[next.edgeID].deleted {
				continue
			}
			stack = append(stack, stackEntry{node: next.neighbor, edgeID: next.edgeID})
			break
		}
		sub.adjacency[top.node] = v
	}

	return order
}
