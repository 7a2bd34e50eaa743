package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EphemerisSettings holds settings for the astronomical computation engine
type EphemerisSettings struct {
	// DataPath points at a directory holding the VSOP87 B series files
	// (VSOP87B.mer, VSOP87B.ven, ...). When empty or unreadable the engine
	// degrades to the built-in lower-precision planetary theory.
	DataPath    string `mapstructure:"data_path"`
	HouseSystem string `mapstructure:"house_system" validate:"required,oneof=placidus regiomontanus porphyry equal whole_sign"`
}

// Validate checks that all fields in EphemerisSettings are valid
func (s *EphemerisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for EphemerisSettings: %w", err)
	}

	return nil
}
