package routing

// AllSimplePaths returns every path from start to destination that visits no
// stop twice. Paths come out in edge insertion order. The result is empty when
// either stop is unknown or the two are not connected.
func AllSimplePaths(g Network, start, destination string) [][]string {
	paths := [][]string{}
	if !g.HasStop(start) || !g.HasStop(destination) {
		return paths
	}
	d := &dfs{
		g:           g,
		destination: destination,
		visited:     map[string]struct{}{},
		paths:       paths,
	}
	d.visit(start)
	return d.paths
}

type dfs struct {
	g           Network
	destination string
	path        []string
	visited     map[string]struct{}
	paths       [][]string
}

func (d *dfs) visit(stop string) {
	d.path = append(d.path, stop)
	d.visited[stop] = struct{}{}

	if stop == d.destination {
		d.paths = append(d.paths, append([]string(nil), d.path...))
	} else {
		for _, e := range d.g.Edges(stop) {
			if _, seen := d.visited[e.To]; !seen {
				d.visit(e.To)
			}
		}
	}

	// backtrack
	d.path = d.path[:len(d.path)-1]
	delete(d.visited, stop)
}
