// Package main is the entry point for the swisseph-cli application.
// It initializes the root command and registers the chart, positions and
// houses sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/ahwethan/swiss-ephemeris-api/cmd/swisseph-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "swisseph-cli",
		Short: "Horary chart computation CLI tool",
		Long: `swisseph-cli is a command-line tool for horary astrology computations.
Casts full horary charts with houses, aspects, essential dignities, the lunar
condition and planetary rulers, lists raw geocentric body positions and
computes house cusps and solar rise and set times for a site.

Results are printed as JSON on standard output.

Set SE_EPHE_PATH to a directory holding the VSOP87 B series files for full
precision; without it the built-in planetary theory is used.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register chart commands
	if err := commands.InitChartCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize chart commands: %w", err)
	}

	// Register position commands
	if err := commands.InitPositionsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize positions commands: %w", err)
	}

	// Register house commands
	if err := commands.InitHousesCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize houses commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
