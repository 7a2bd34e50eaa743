package commands

import (
	"context"
	"fmt"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ChartCommandHandler encapsulates logic for casting horary charts via CLI.
type ChartCommandHandler struct {
	computeService horoscope.ComputeService
	logger         logger.Logger
}

// NewChartCommandHandler initializes and returns a ChartCommandHandler instance with
// configured logger and chart computation service.
func NewChartCommandHandler() (*ChartCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	computeService, err := buildComputeService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}

	return &ChartCommandHandler{
		computeService: computeService,
		logger:         loggerInstance,
	}, nil
}

// CastChartCmd casts a horary chart for the given moment and place and prints it as JSON
func (commandHandler *ChartCommandHandler) CastChartCmd(cmd *cobra.Command, _ []string) {
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
	location, err := cmd.Flags().GetString("location")
	if err != nil {
		commandHandler.logger.Error("invalid location flag ", err)
		return
	}
	houseSystem, err := cmd.Flags().GetString("house-system")
	if err != nil {
		commandHandler.logger.Error("invalid house-system flag ", err)
		return
	}
	question, err := cmd.Flags().GetString("question")
	if err != nil {
		commandHandler.logger.Error("invalid question flag ", err)
		return
	}

	input := &horoscope.ChartInput{
		Date:         date,
		Time:         clock,
		Timezone:     timezone,
		LocationName: location,
		HouseSystem:  houseSystem,
		Question:     question,
	}

	// Zero is a valid coordinate, so only explicitly set flags reach the input.
	if cmd.Flags().Changed("latitude") {
		latitude, err := cmd.Flags().GetFloat64("latitude")
		if err != nil {
			commandHandler.logger.Error("invalid latitude flag ", err)
			return
		}
		input.Latitude = &latitude
	}
	if cmd.Flags().Changed("longitude") {
		longitude, err := cmd.Flags().GetFloat64("longitude")
		if err != nil {
			commandHandler.logger.Error("invalid longitude flag ", err)
			return
		}
		input.Longitude = &longitude
	}

	chart, err := commandHandler.computeService.Compute(context.Background(), input)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := printJSON(chart); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// InitChartCommands registers chart-related commands
func InitChartCommands(rootCmd *cobra.Command) error {
	handler, err := NewChartCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create chart command handler %w", err)
	}

	var castChartCmd = &cobra.Command{
		Use:   "cast-chart",
		Short: "Cast a horary chart",
		Run:   handler.CastChartCmd,
	}
	castChartCmd.Flags().StringP("date", "", "", "Chart date as YYYY-MM-DD (defaults to today)")
	castChartCmd.Flags().StringP("time", "", "", "Chart time as HH:MM or HH:MM:SS (defaults to now)")
	castChartCmd.Flags().StringP("timezone", "", "", "IANA timezone name, e.g. Europe/Istanbul (defaults to UTC)")
	castChartCmd.Flags().StringP("location", "", "", "Place name to geocode when no coordinates are given")
	castChartCmd.Flags().Float64P("latitude", "", 0, "Geographic latitude in decimal degrees")
	castChartCmd.Flags().Float64P("longitude", "", 0, "Geographic longitude in decimal degrees")
	castChartCmd.Flags().StringP("house-system", "", "", "House system: placidus, regiomontanus, whole_sign, equal or porphyry")
	castChartCmd.Flags().StringP("question", "", "", "The horary question the chart is cast for")
	rootCmd.AddCommand(castChartCmd)

	return nil
}
