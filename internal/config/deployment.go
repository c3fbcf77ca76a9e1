package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Wiring constants describe how the instrument was programmed: "beam"
// instruments report raw beam velocities and need the full transform
// pipeline; "earth" instruments transform on board and only need the
// declination correction.
const (
	WiringBeam  = "beam"
	WiringEarth = "earth"
)

// DeploymentConfig describes a single ADCP deployment. Fields are pointers
// so partial configs are safe: anything omitted from the JSON falls back to
// the Get* defaults.
type DeploymentConfig struct {
	// Site
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Instrument
	Wiring         *string  `json:"wiring,omitempty"`          // "beam" or "earth"
	BeamCount      *int     `json:"beam_count,omitempty"`      // 4 or 5
	UpwardLooking  *bool    `json:"upward_looking,omitempty"`  // PD0 convention: 1 = up
	DeclinationDeg *float64 `json:"declination_deg,omitempty"` // fixed site override, east-positive

	// Backscatter
	BackscatterScale *float64 `json:"backscatter_scale,omitempty"` // dB/count

	// Bin geometry (centimeters, as configured on the instrument)
	DistFirstBinCM *float64 `json:"dist_first_bin_cm,omitempty"`
	BinSizeCM      *float64 `json:"bin_size_cm,omitempty"`
	NumBins        *int     `json:"num_bins,omitempty"`
}

// LoadDeploymentConfig loads a DeploymentConfig from a JSON file. The file
// is validated to ensure it has a .json extension and is under the max file
// size. Fields omitted from the JSON retain their defaults, so partial
// configs are safe.
func LoadDeploymentConfig(path string) (*DeploymentConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &DeploymentConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values outside the supported
// envelope.
func (c *DeploymentConfig) Validate() error {
	if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
		return fmt.Errorf("latitude %g out of range [-90, 90]", *c.Latitude)
	}
	if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
		return fmt.Errorf("longitude %g out of range [-180, 180]", *c.Longitude)
	}
	if c.Wiring != nil && *c.Wiring != WiringBeam && *c.Wiring != WiringEarth {
		return fmt.Errorf("wiring must be %q or %q, got %q", WiringBeam, WiringEarth, *c.Wiring)
	}
	if c.BeamCount != nil && *c.BeamCount != 4 && *c.BeamCount != 5 {
		return fmt.Errorf("beam_count must be 4 or 5, got %d", *c.BeamCount)
	}
	if c.BackscatterScale != nil && *c.BackscatterScale <= 0 {
		return fmt.Errorf("backscatter_scale must be positive, got %g", *c.BackscatterScale)
	}
	if c.DistFirstBinCM != nil && *c.DistFirstBinCM < 0 {
		return fmt.Errorf("dist_first_bin_cm must be non-negative, got %g", *c.DistFirstBinCM)
	}
	if c.BinSizeCM != nil && *c.BinSizeCM <= 0 {
		return fmt.Errorf("bin_size_cm must be positive, got %g", *c.BinSizeCM)
	}
	if c.NumBins != nil && *c.NumBins < 1 {
		return fmt.Errorf("num_bins must be at least 1, got %d", *c.NumBins)
	}
	return nil
}

// GetLatitude returns the site latitude, defaulting to 0.
func (c *DeploymentConfig) GetLatitude() float64 {
	if c.Latitude != nil {
		return *c.Latitude
	}
	return 0
}

// GetLongitude returns the site longitude, defaulting to 0.
func (c *DeploymentConfig) GetLongitude() float64 {
	if c.Longitude != nil {
		return *c.Longitude
	}
	return 0
}

// GetWiring returns the instrument wiring, defaulting to beam coordinates.
func (c *DeploymentConfig) GetWiring() string {
	if c.Wiring != nil {
		return *c.Wiring
	}
	return WiringBeam
}

// GetBeamCount returns the beam count, defaulting to 4.
func (c *DeploymentConfig) GetBeamCount() int {
	if c.BeamCount != nil {
		return *c.BeamCount
	}
	return 4
}

// GetUpwardLooking returns the vertical orientation flag, defaulting to
// downward looking.
func (c *DeploymentConfig) GetUpwardLooking() bool {
	if c.UpwardLooking != nil {
		return *c.UpwardLooking
	}
	return false
}

// GetDeclinationDeg returns the fixed site declination override, defaulting
// to 0 (no correction).
func (c *DeploymentConfig) GetDeclinationDeg() float64 {
	if c.DeclinationDeg != nil {
		return *c.DeclinationDeg
	}
	return 0
}

// GetBackscatterScale returns the echo intensity scale factor, defaulting
// to the Workhorse nominal 0.45 dB/count.
func (c *DeploymentConfig) GetBackscatterScale() float64 {
	if c.BackscatterScale != nil {
		return *c.BackscatterScale
	}
	return 0.45
}

// GetDistFirstBinCM returns the distance to the first bin in centimeters.
func (c *DeploymentConfig) GetDistFirstBinCM() float64 {
	if c.DistFirstBinCM != nil {
		return *c.DistFirstBinCM
	}
	return 0
}

// GetBinSizeCM returns the bin size in centimeters.
func (c *DeploymentConfig) GetBinSizeCM() float64 {
	if c.BinSizeCM != nil {
		return *c.BinSizeCM
	}
	return 100
}

// GetNumBins returns the configured bin count.
func (c *DeploymentConfig) GetNumBins() int {
	if c.NumBins != nil {
		return *c.NumBins
	}
	return 1
}
