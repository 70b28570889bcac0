package transitplanner

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/transit-planner/config"
	"github.com/theoremus-urban-solutions/transit-planner/graph"
	"github.com/theoremus-urban-solutions/transit-planner/gtfs"
	"github.com/theoremus-urban-solutions/transit-planner/network"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	s := NewServer(testPlanner(t, config.PlannerConfig{}), 0)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHandleHealth(t *testing.T) {
	rec := serve(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	got := decode[healthResponse](t, rec)
	if got.Status != "ok" || got.Stops != 7 || got.Edges != 14 {
		t.Errorf("unexpected health response: %+v", got)
	}
}

func TestHandleStops(t *testing.T) {
	rec := serve(t, "/api/stops")
	got := decode[stopsResponse](t, rec)
	ids := make([]string, len(got.Stops))
	for i, st := range got.Stops {
		ids[i] = st.ID
	}
	if want := []string{"A", "B", "C", "D", "E", "Y", "Z"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

func TestHandleStops_Details(t *testing.T) {
	g := graph.New()
	if err := g.AddRoute([]string{"A", "B"}, "R1", []float64{1}); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}
	n := &network.Network{Graph: g, Stops: map[string]gtfs.Stop{
		"A": {ID: "A", Name: "Alpha", Location: &gtfs.Location{Lat: 42.69, Lon: 23.32}},
	}}
	s := NewServer(NewPlannerForNetwork(n, config.PlannerConfig{}), 0)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stops", nil))

	want := `{"stops":[{"id":"A","name":"Alpha","location":{"lat":42.69,"lon":23.32}},{"id":"B"}]}` + "\n"
	if rec.Body.String() != want {
		t.Errorf("expected %s, got %s", want, rec.Body.String())
	}
}

func TestHandlePaths(t *testing.T) {
	rec := serve(t, "/api/paths?from=A&to=D")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[pathsResponse](t, rec)
	if len(got.Paths) != 4 {
		t.Errorf("expected 4 paths, got %d", len(got.Paths))
	}
}

func TestHandleShortest(t *testing.T) {
	rec := serve(t, "/api/shortest?from=A&to=D")
	got := decode[ShortestResult](t, rec)
	if !reflect.DeepEqual(got.Path, []string{"A", "E", "D"}) || got.TotalTime == nil || *got.TotalTime != 2 {
		t.Errorf("unexpected shortest response: %s", rec.Body.String())
	}
}

func TestHandleTransfers(t *testing.T) {
	rec := serve(t, "/api/transfers?from=A&to=D")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[transfersResponse](t, rec)
	if len(got.Itineraries) != 3 {
		t.Fatalf("expected 3 itineraries, got %d", len(got.Itineraries))
	}
	if want := []string{"A", "E", "D", "R2"}; !reflect.DeepEqual(got.Itineraries[0].Annotated, want) {
		t.Errorf("expected %v first, got %v", want, got.Itineraries[0].Annotated)
	}
}

func TestHandleThrough(t *testing.T) {
	rec := serve(t, "/api/through?from=A&to=D&via=C,%20Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decode[itineraryResponse](t, rec)
	if want := []string{"A", "B", "C", "D", "R1"}; !reflect.DeepEqual(got.Annotated, want) {
		t.Errorf("expected %v, got %v", want, got.Annotated)
	}
	if got.TotalTime != 3 {
		t.Errorf("expected time 3, got %v", got.TotalTime)
	}
}

func TestHandlers_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{name: "missing from", target: "/api/paths?to=D", status: http.StatusBadRequest},
		{name: "missing to", target: "/api/shortest?from=A", status: http.StatusBadRequest},
		{name: "unknown stop", target: "/api/transfers?from=A&to=Q", status: http.StatusNotFound},
		{name: "no waypoints", target: "/api/through?from=A&to=D", status: http.StatusBadRequest},
		{name: "no route through waypoint", target: "/api/through?from=A&to=D&via=Z", status: http.StatusNotFound},
		{name: "unknown endpoint", target: "/api/nope", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.target)
			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	s := NewServer(testPlanner(t, config.PlannerConfig{}), 0)
	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"A", []string{"A"}},
		{"A, B,,C ", []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SplitList(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
