package routing

import (
	"container/heap"
	"math"
)

// ShortestPath returns the minimum-time stop sequence from start to
// destination. When destination cannot be reached the path is the single stop
// destination and reachable is false.
func ShortestPath(g Network, start, destination string) (path []string, reachable bool) {
	path, _, reachable = search(g, start, destination)
	return path, reachable
}

// ShortestPathTime is ShortestPath that also returns the cost found by the
// search. An unreachable destination gives +Inf. The cost can be lower than the
// Replay time of the path when parallel routes connect the same stops, since
// Replay does not pick the cheapest one.
func ShortestPathTime(g Network, start, destination string) ([]string, float64, bool) {
	return search(g, start, destination)
}

func search(g Network, start, destination string) ([]string, float64, bool) {
	if !g.HasStop(start) {
		return []string{destination}, math.Inf(1), false
	}
	if start == destination {
		return []string{start}, 0, true
	}

	cost := map[string]float64{start: 0}
	pred := map[string]string{}
	costOf := func(stop string) float64 {
		if c, ok := cost[stop]; ok {
			return c
		}
		return math.Inf(1)
	}

	pq := &frontier{}
	heap.Push(pq, frontierItem{stop: start, cost: 0})
	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		// stale entry, a cheaper one was pushed after it
		if item.cost > costOf(item.stop) {
			continue
		}
		if item.stop == destination {
			break
		}
		for _, e := range g.Edges(item.stop) {
			next := item.cost + e.Weight
			if next < costOf(e.To) {
				cost[e.To] = next
				pred[e.To] = item.stop
				heap.Push(pq, frontierItem{stop: e.To, cost: next})
			}
		}
	}

	if _, ok := pred[destination]; !ok {
		return []string{destination}, math.Inf(1), false
	}
	return reconstructPath(pred, start, destination), cost[destination], true
}

func reconstructPath(pred map[string]string, start, destination string) []string {
	var rev []string
	for at := destination; ; at = pred[at] {
		rev = append(rev, at)
		if at == start {
			break
		}
	}
	path := make([]string, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}

// frontierItem carries the cost a stop had when it was pushed. Entries are
// never updated in place; ShortestPath skips the ones that went stale.
type frontierItem struct {
	stop string
	cost float64
}

type frontier []frontierItem

func (f frontier) Len() int {
	return len(f)
}

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].stop < f[j].stop
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
}

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
