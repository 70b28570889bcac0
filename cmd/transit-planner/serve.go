package main

import (
	"github.com/spf13/cobra"

	transitplanner "github.com/theoremus-urban-solutions/transit-planner"
	"github.com/theoremus-urban-solutions/transit-planner/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve routing queries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlanner()
		if err != nil {
			return err
		}
		port := config.Config.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}
		s := transitplanner.NewServer(p, port)
		s.Start()
		s.HandleGracefulShutdown()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "Port to listen on (overrides config)")
}
