package commands

import (
	"context"
	"fmt"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PositionsCommandHandler encapsulates logic for listing geocentric body positions via CLI.
type PositionsCommandHandler struct {
	computeService horoscope.ComputeService
	logger         logger.Logger
}

// NewPositionsCommandHandler initializes and returns a PositionsCommandHandler instance with
// configured logger and chart computation service.
func NewPositionsCommandHandler() (*PositionsCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	computeService, err := buildComputeService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}

	return &PositionsCommandHandler{
		computeService: computeService,
		logger:         loggerInstance,
	}, nil
}

// ListPositionsCmd computes geocentric positions for the given moment and prints them as JSON
func (commandHandler *PositionsCommandHandler) ListPositionsCmd(cmd *cobra.Command, _ []string) {
	date, err := cmd.Flags().GetString("date")
	if err != nil {
		commandHandler.logger.Error("invalid date flag ", err)
		return
	}
	clock, err := cmd.Flags().GetString("time")
	if err != nil {
		commandHandler.logger.Error("invalid time flag ", err)
		return
	}
	timezone, err := cmd.Flags().GetString("timezone")
	if err != nil {
		commandHandler.logger.Error("invalid timezone flag ", err)
		return
	}

	input := &horoscope.PositionsInput{
		Date:     date,
		Time:     clock,
		Timezone: timezone,
	}

	positions, err := commandHandler.computeService.Positions(context.Background(), input)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := printJSON(positions); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// InitPositionsCommands registers position-related commands
func InitPositionsCommands(rootCmd *cobra.Command) error {
	handler, err := NewPositionsCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create positions command handler %w", err)
	}

	var listPositionsCmd = &cobra.Command{
		Use:   "list-positions",
		Short: "List geocentric body positions",
		Run:   handler.ListPositionsCmd,
	}
	listPositionsCmd.Flags().StringP("date", "", "", "Date as YYYY-MM-DD (defaults to today)")
	listPositionsCmd.Flags().StringP("time", "", "", "Time as HH:MM or HH:MM:SS (defaults to now)")
	listPositionsCmd.Flags().StringP("timezone", "", "", "IANA timezone name, e.g. Europe/Istanbul (defaults to UTC)")
	rootCmd.AddCommand(listPositionsCmd)

	return nil
}
