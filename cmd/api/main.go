package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/creativepulse/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "creativepulse",
		Short: "CreativePulse API Server",
		Long:  `CreativePulse is a creative-operations task tracker: assigned deliverables move through a review lifecycle while a dashboard aggregates team performance.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
