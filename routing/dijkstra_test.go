package routing

import (
	"math"
	"reflect"
	"testing"
)

func TestShortestPath_Mesh(t *testing.T) {
	g := meshGraph(t)

	path, ok := ShortestPath(g, "A", "D")
	if !ok {
		t.Fatal("expected D to be reachable")
	}
	if want := []string{"A", "E", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("expected %v, got %v", want, path)
	}
	if _, tm, _ := ShortestPathTime(g, "A", "D"); tm != 2 {
		t.Errorf("expected time 2, got %v", tm)
	}
}

// Without parallel edges the replayed time of the shortest path equals the
// minimum over all simple paths.
func TestShortestPath_MatchesEnumeratedMinimum(t *testing.T) {
	g := buildGraph(t,
		route{"R1", []string{"A", "B", "C", "D", "E"}, []float64{4, 1, 7, 2}},
		route{"R2", []string{"A", "F", "C"}, []float64{1, 1}},
		route{"R3", []string{"F", "G", "E"}, []float64{3, 9}},
		route{"R4", []string{"B", "G"}, []float64{2}},
	)

	for _, dest := range []string{"B", "C", "D", "E", "G"} {
		t.Run(dest, func(t *testing.T) {
			path, ok := ShortestPath(g, "A", dest)
			if !ok {
				t.Fatalf("expected %s to be reachable", dest)
			}
			if path[0] != "A" || path[len(path)-1] != dest {
				t.Fatalf("path %v does not run from A to %s", path, dest)
			}
			got, err := Replay(g, path)
			if err != nil {
				t.Fatalf("Replay: %v", err)
			}

			best := math.Inf(1)
			for _, p := range AllSimplePaths(g, "A", dest) {
				it, err := Replay(g, p)
				if err != nil {
					t.Fatalf("Replay: %v", err)
				}
				best = math.Min(best, it.TotalTime)
			}
			if got.TotalTime != best {
				t.Errorf("expected time %v, got %v for %v", best, got.TotalTime, path)
			}
		})
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := meshGraph(t)

	tests := []struct {
		name        string
		start, dest string
	}{
		{name: "disconnected", start: "A", dest: "Z"},
		{name: "unknown destination", start: "A", dest: "Q"},
		{name: "unknown start", start: "Q", dest: "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := ShortestPath(g, tt.start, tt.dest)
			if ok {
				t.Fatal("expected unreachable result")
			}
			if want := []string{tt.dest}; !reflect.DeepEqual(path, want) {
				t.Errorf("expected %v, got %v", want, path)
			}
		})
	}
}

func TestShortestPath_SameStop(t *testing.T) {
	g := meshGraph(t)
	path, ok := ShortestPath(g, "C", "C")
	if !ok || !reflect.DeepEqual(path, []string{"C"}) {
		t.Errorf("expected [C] reachable, got %v %v", path, ok)
	}
}

func TestShortestPath_ParallelRoutes(t *testing.T) {
	g := buildGraph(t,
		route{"R1", []string{"A", "B"}, []float64{5}},
		route{"R2", []string{"A", "B"}, []float64{2}},
	)
	path, ok := ShortestPath(g, "A", "B")
	if !ok || !reflect.DeepEqual(path, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v %v", path, ok)
	}
	if _, tm, _ := ShortestPathTime(g, "A", "B"); tm != 2 {
		t.Errorf("expected the 2-minute edge, got %v", tm)
	}
}

// A relaxation must win over an entry pushed earlier with a higher cost.
func TestShortestPath_RelaxedStopIsNotSettledEarly(t *testing.T) {
	g := buildGraph(t,
		route{"R1", []string{"S", "T"}, []float64{10}},
		route{"R2", []string{"S", "U", "V", "T"}, []float64{1, 1, 1}},
		route{"R3", []string{"T", "W"}, []float64{1}},
	)
	path, ok := ShortestPath(g, "S", "W")
	if !ok {
		t.Fatal("expected W to be reachable")
	}
	if want := []string{"S", "U", "V", "T", "W"}; !reflect.DeepEqual(path, want) {
		t.Errorf("expected %v, got %v", want, path)
	}
	if _, tm, _ := ShortestPathTime(g, "S", "W"); tm != 4 {
		t.Errorf("expected time 4, got %v", tm)
	}
}

func TestShortestPathTime_Unreachable(t *testing.T) {
	g := meshGraph(t)

	path, tm, ok := ShortestPathTime(g, "A", "Z")
	if ok || !math.IsInf(tm, 1) || !reflect.DeepEqual(path, []string{"Z"}) {
		t.Errorf("expected [Z] +Inf false, got %v %v %v", path, tm, ok)
	}
}
