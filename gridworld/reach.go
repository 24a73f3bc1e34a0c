package gridworld

// offsets4 lists the orthogonal neighbor deltas in Up, Right, Down, Left order.
var offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Distances returns, per state index, the minimum number of orthogonal moves
// from the start cell, or -1 if the state cannot be reached. Goal cells are
// absorbing and are not expanded further.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for distances and the queue.
func (g *Grid) Distances() []int {
	dist := make([]int, len(g.states))
	for i := range dist {
		dist[i] = -1
	}
	s0, _ := g.Index(g.start)
	dist[s0] = 0
	queue := []int{s0}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if g.IsGoalState(u) {
			continue
		}
		uc := g.states[u]
		for _, d := range offsets4 {
			v, ok := g.Index(uc.Add(d[0], d[1]))
			if !ok || dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist
}

// Reachable reports, per state index, whether the state can be reached from
// the start cell.
func (g *Grid) Reachable() []bool {
	dist := g.Distances()
	out := make([]bool, len(dist))
	for i, d := range dist {
		out[i] = d >= 0
	}
	return out
}

// GoalReachable reports whether any goal can be reached from the start cell.
func (g *Grid) GoalReachable() bool {
	dist := g.Distances()
	for _, s := range g.goals {
		if dist[s] >= 0 {
			return true
		}
	}
	return false
}

// GoalDistance returns the BFS distance from start to the nearest goal, or -1.
func (g *Grid) GoalDistance() int {
	dist := g.Distances()
	best := -1
	for _, s := range g.goals {
		if d := dist[s]; d >= 0 && (best < 0 || d < best) {
			best = d
		}
	}
	return best
}
