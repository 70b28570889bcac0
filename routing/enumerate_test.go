package routing

import (
	"reflect"
	"testing"
)

func TestAllSimplePaths_InsertionOrder(t *testing.T) {
	g := meshGraph(t)

	got := AllSimplePaths(g, "A", "D")
	want := [][]string{
		{"A", "B", "C", "D"},
		{"A", "B", "E", "D"},
		{"A", "E", "D"},
		{"A", "E", "B", "C", "D"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAllSimplePaths_NoRepeatedStops(t *testing.T) {
	g := meshGraph(t)
	for _, p := range AllSimplePaths(g, "A", "D") {
		seen := map[string]bool{}
		for _, s := range p {
			if seen[s] {
				t.Fatalf("path %v repeats %s", p, s)
			}
			seen[s] = true
		}
	}
}

func TestAllSimplePaths_EmptyResults(t *testing.T) {
	g := meshGraph(t)

	tests := []struct {
		name        string
		start, dest string
	}{
		{name: "unknown start", start: "Q", dest: "D"},
		{name: "unknown destination", start: "A", dest: "Q"},
		{name: "disconnected", start: "A", dest: "Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllSimplePaths(g, tt.start, tt.dest)
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty non-nil result, got %v", got)
			}
		})
	}
}

func TestAllSimplePaths_SameStop(t *testing.T) {
	g := meshGraph(t)
	got := AllSimplePaths(g, "B", "B")
	if want := [][]string{{"B"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
