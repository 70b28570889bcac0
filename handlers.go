package transitplanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transit-planner/gtfs"
	"github.com/theoremus-urban-solutions/transit-planner/routing"
)

type healthResponse struct {
	Status string `json:"status"`
	Stops  int    `json:"stops"`
	Edges  int    `json:"edges"`
}

type stopsResponse struct {
	Stops []gtfs.Stop `json:"stops"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type pathsResponse struct {
	From  string     `json:"from"`
	To    string     `json:"to"`
	Paths [][]string `json:"paths"`
}

// itineraryResponse adds the annotated stop-then-route list to an itinerary
type itineraryResponse struct {
	routing.Itinerary
	Annotated []string `json:"annotated"`
}

type transfersResponse struct {
	From        string              `json:"from"`
	To          string              `json:"to"`
	Itineraries []itineraryResponse `json:"itineraries"`
}

func newItineraryResponse(it routing.Itinerary) itineraryResponse {
	return itineraryResponse{Itinerary: it, Annotated: it.Annotated()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

// writeError maps query errors to HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errMissingParam), errors.Is(err, routing.ErrNoWaypoints):
		status = http.StatusBadRequest
	case errors.Is(err, ErrUnknownStop), errors.Is(err, routing.ErrNoRoute):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		slog.Error("query failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

var errMissingParam = errors.New("missing query parameter")

func endpoints(r *http.Request) (string, string, error) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" {
		return "", "", fmt.Errorf("from: %w", errMissingParam)
	}
	if to == "" {
		return "", "", fmt.Errorf("to: %w", errMissingParam)
	}
	return from, to, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	g := s.planner.Graph()
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Stops: g.StopCount(), Edges: g.EdgeCount()})
}

func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stopsResponse{Stops: s.planner.Stops()})
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	from, to, err := endpoints(r)
	if err != nil {
		writeError(w, err)
		return
	}
	paths, err := s.planner.AllSimplePaths(from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pathsResponse{From: from, To: to, Paths: paths})
}

func (s *Server) handleShortest(w http.ResponseWriter, r *http.Request) {
	from, to, err := endpoints(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.planner.ShortestPath(from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleTransfers(w http.ResponseWriter, r *http.Request) {
	from, to, err := endpoints(r)
	if err != nil {
		writeError(w, err)
		return
	}
	its, err := s.planner.BestTransferPaths(from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := transfersResponse{From: from, To: to, Itineraries: make([]itineraryResponse, 0, len(its))}
	for _, it := range its {
		resp.Itineraries = append(resp.Itineraries, newItineraryResponse(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleThrough(w http.ResponseWriter, r *http.Request) {
	from, to, err := endpoints(r)
	if err != nil {
		writeError(w, err)
		return
	}
	it, err := s.planner.ShortestPathThrough(from, to, SplitList(r.URL.Query().Get("via")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newItineraryResponse(it))
}

// SplitList splits a comma separated list, dropping empty items
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
