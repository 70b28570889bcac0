package main

import (
	"fmt"

	"github.com/spf13/cobra"

	transitplanner "github.com/theoremus-urban-solutions/transit-planner"
)

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "List every stop in the network",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlanner()
		if err != nil {
			return err
		}
		printStops(cmd.OutOrStdout(), p.Stops())
		return nil
	},
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List every simple path between two stops",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, from, to, err := queryArgs(cmd)
		if err != nil {
			return err
		}
		paths, err := p.AllSimplePaths(from, to)
		if err != nil {
			return err
		}
		printPaths(cmd.OutOrStdout(), from, to, paths)
		return nil
	},
}

var shortestCmd = &cobra.Command{
	Use:   "shortest",
	Short: "Find the minimum travel time path between two stops",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, from, to, err := queryArgs(cmd)
		if err != nil {
			return err
		}
		res, err := p.ShortestPath(from, to)
		if err != nil {
			return err
		}
		printShortest(cmd.OutOrStdout(), res)
		return nil
	},
}

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Rank paths between two stops by transfers, then travel time",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, from, to, err := queryArgs(cmd)
		if err != nil {
			return err
		}
		its, err := p.BestTransferPaths(from, to)
		if err != nil {
			return err
		}
		if len(its) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("No path from %s to %s.", from, to)))
			return nil
		}
		for i, it := range its {
			printItinerary(cmd.OutOrStdout(), fmt.Sprintf("#%d", i+1), it)
		}
		return nil
	},
}

var throughCmd = &cobra.Command{
	Use:   "through",
	Short: "Find the cheapest path between two stops passing through a waypoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, from, to, err := queryArgs(cmd)
		if err != nil {
			return err
		}
		via, _ := cmd.Flags().GetString("via")
		it, err := p.ShortestPathThrough(from, to, transitplanner.SplitList(via))
		if err != nil {
			return err
		}
		printItinerary(cmd.OutOrStdout(), "via", it)
		return nil
	},
}

func queryArgs(cmd *cobra.Command) (*transitplanner.Planner, string, string, error) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if from == "" || to == "" {
		return nil, "", "", fmt.Errorf("must specify both --from and --to")
	}
	p, err := loadPlanner()
	if err != nil {
		return nil, "", "", err
	}
	return p, from, to, nil
}

func init() {
	for _, c := range []*cobra.Command{pathsCmd, shortestCmd, transfersCmd, throughCmd} {
		c.Flags().StringP("from", "f", "", "Start stop")
		c.Flags().StringP("to", "t", "", "Destination stop")
	}
	throughCmd.Flags().String("via", "", "Comma separated waypoint stops")
	rootCmd.AddCommand(stopsCmd, pathsCmd, shortestCmd, transfersCmd, throughCmd)
}
