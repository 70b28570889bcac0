package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	transitplanner "github.com/theoremus-urban-solutions/transit-planner"
	"github.com/theoremus-urban-solutions/transit-planner/gtfs"
	"github.com/theoremus-urban-solutions/transit-planner/routing"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	stopStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	routeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func joinStops(stops []string) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = stopStyle.Render(s)
	}
	return strings.Join(parts, " → ")
}

func printStops(w io.Writer, stops []gtfs.Stop) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d stops", len(stops))))
	for _, s := range stops {
		line := "  • " + stopStyle.Render(s.ID)
		if s.Name != "" {
			line += " " + s.Name
		}
		if s.Location != nil {
			line += " " + mutedStyle.Render(fmt.Sprintf("(%.5f, %.5f)", s.Location.Lat, s.Location.Lon))
		}
		fmt.Fprintln(w, line)
	}
}

func printPaths(w io.Writer, from, to string, paths [][]string) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d paths from %s to %s", len(paths), from, to)))
	for _, p := range paths {
		fmt.Fprintf(w, "  %s\n", joinStops(p))
	}
}

func printShortest(w io.Writer, res transitplanner.ShortestResult) {
	if !res.Reachable {
		fmt.Fprintln(w, mutedStyle.Render("Destination is unreachable."))
		return
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%g min", *res.TotalTime)))
	fmt.Fprintf(w, "  %s\n", joinStops(res.Path))
}

func printItinerary(w io.Writer, label string, it routing.Itinerary) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s  %d transfers, %g min", label, it.Transfers, it.TotalTime)))
	for _, leg := range it.Legs {
		fmt.Fprintf(w, "  %s %s → %s %s\n",
			routeStyle.Render(leg.Route),
			stopStyle.Render(leg.From),
			stopStyle.Render(leg.To),
			mutedStyle.Render(fmt.Sprintf("(%g min)", leg.Weight)),
		)
	}
}
