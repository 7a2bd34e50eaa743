package commands

import (
	"fmt"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/astrometry"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// HousesCommandHandler encapsulates logic for house cusp and solar rise/set computations via CLI.
type HousesCommandHandler struct {
	houseEngine   horoscope.HouseEngine
	riseSetEngine horoscope.RiseSetEngine
	logger        logger.Logger
}

// NewHousesCommandHandler initializes and returns a HousesCommandHandler instance with
// configured logger and astrometry engines.
func NewHousesCommandHandler() (*HousesCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	houseEngine, err := astrometry.NewHouseEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create house engine: %w", err)
	}

	riseSetEngine, err := astrometry.NewRiseSetEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create rise/set engine: %w", err)
	}

	return &HousesCommandHandler{
		houseEngine:   houseEngine,
		riseSetEngine: riseSetEngine,
		logger:        loggerInstance,
	}, nil
}

// houseWheel is the JSON shape of a computed cusp set.
type houseWheel struct {
	Moment      time.Time             `json:"moment"`
	JulianDay   float64               `json:"julian_day"`
	HouseSystem horoscope.HouseSystem `json:"house_system"`
	Cusps       [12]float64           `json:"cusps"`
	Ascendant   float64               `json:"ascendant"`
	Midheaven   float64               `json:"midheaven"`
	Descendant  float64               `json:"descendant"`
	ImumCoeli   float64               `json:"imum_coeli"`
}

// sunTimes is the JSON shape of a computed solar day.
type sunTimes struct {
	Date    string    `json:"date"`
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

// ComputeHousesCmd computes house cusps for a moment and site and prints them as JSON
func (commandHandler *HousesCommandHandler) ComputeHousesCmd(cmd *cobra.Command, _ []string) {
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
	latitude, err := cmd.Flags().GetFloat64("latitude")
	if err != nil {
		commandHandler.logger.Error("invalid latitude flag ", err)
		return
	}
	longitude, err := cmd.Flags().GetFloat64("longitude")
	if err != nil {
		commandHandler.logger.Error("invalid longitude flag ", err)
		return
	}
	houseSystem, err := cmd.Flags().GetString("house-system")
	if err != nil {
		commandHandler.logger.Error("invalid house-system flag ", err)
		return
	}

	system, err := horoscope.ParseHouseSystem(houseSystem)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	moment, err := horoscope.CivilMoment(date, clock, timezone)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	jd := ephemeris.JulianDay(moment)
	cusps, err := commandHandler.houseEngine.Cusps(jd, latitude, longitude, system)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	wheel := houseWheel{
		Moment:      moment,
		JulianDay:   jd,
		HouseSystem: system,
		Cusps:       cusps.Houses,
		Ascendant:   cusps.Ascendant,
		Midheaven:   cusps.Midheaven,
		Descendant:  cusps.Descendant(),
		ImumCoeli:   cusps.ImumCoeli(),
	}

	if err := printJSON(wheel); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// SunTimesCmd computes sunrise and sunset for a date and site and prints them as JSON
func (commandHandler *HousesCommandHandler) SunTimesCmd(cmd *cobra.Command, _ []string) {
	date, err := cmd.Flags().GetString("date")
	if err != nil {
		commandHandler.logger.Error("invalid date flag ", err)
		return
	}
	timezone, err := cmd.Flags().GetString("timezone")
	if err != nil {
		commandHandler.logger.Error("invalid timezone flag ", err)
		return
	}
	latitude, err := cmd.Flags().GetFloat64("latitude")
	if err != nil {
		commandHandler.logger.Error("invalid latitude flag ", err)
		return
	}
	longitude, err := cmd.Flags().GetFloat64("longitude")
	if err != nil {
		commandHandler.logger.Error("invalid longitude flag ", err)
		return
	}

	moment, err := horoscope.CivilMoment(date, "", timezone)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	rise, set, err := commandHandler.riseSetEngine.SunTimes(moment, latitude, longitude)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	day := sunTimes{
		Date:    moment.Format("2006-01-02"),
		Sunrise: rise,
		Sunset:  set,
	}

	if err := printJSON(day); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// InitHousesCommands registers house-related commands
func InitHousesCommands(rootCmd *cobra.Command) error {
	handler, err := NewHousesCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create houses command handler %w", err)
	}

	var computeHousesCmd = &cobra.Command{
		Use:   "compute-houses",
		Short: "Compute house cusps for a moment and site",
		Run:   handler.ComputeHousesCmd,
	}
	computeHousesCmd.Flags().StringP("date", "", "", "Date as YYYY-MM-DD (defaults to today)")
	computeHousesCmd.Flags().StringP("time", "", "", "Time as HH:MM or HH:MM:SS (defaults to now)")
	computeHousesCmd.Flags().StringP("timezone", "", "", "IANA timezone name (defaults to UTC)")
	computeHousesCmd.Flags().Float64P("latitude", "", 0, "Geographic latitude in decimal degrees")
	computeHousesCmd.Flags().Float64P("longitude", "", 0, "Geographic longitude in decimal degrees")
	computeHousesCmd.Flags().StringP("house-system", "", "", "House system: placidus, regiomontanus, whole_sign, equal or porphyry")
	rootCmd.AddCommand(computeHousesCmd)

	var sunTimesCmd = &cobra.Command{
		Use:   "sun-times",
		Short: "Compute sunrise and sunset for a date and site",
		Run:   handler.SunTimesCmd,
	}
	sunTimesCmd.Flags().StringP("date", "", "", "Date as YYYY-MM-DD (defaults to today)")
	sunTimesCmd.Flags().StringP("timezone", "", "", "IANA timezone name (defaults to UTC)")
	sunTimesCmd.Flags().Float64P("latitude", "", 0, "Geographic latitude in decimal degrees")
	sunTimesCmd.Flags().Float64P("longitude", "", 0, "Geographic longitude in decimal degrees")
	rootCmd.AddCommand(sunTimesCmd)

	return nil
}
