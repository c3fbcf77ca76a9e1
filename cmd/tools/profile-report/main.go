// Package main provides a batch report tool for ADCP velocity profiles.
// It processes an ensembles JSON file through the coordinate-transform
// pipeline and renders the resulting data products as HTML and PNG charts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/moana-data/currents.report/internal/adcp"
	"github.com/moana-data/currents.report/internal/config"
	"github.com/moana-data/currents.report/internal/profile"
)

// Config holds configuration for the report run.
type Config struct {
	InputFile  string
	ConfigFile string
	OutputDir  string
	Sample     int
	WritePNG   bool
}

// EnsembleFile is the on-disk batch format: N samples of M bins per
// velocity field, with per-sample attitude and pressure telemetry in raw
// instrument units.
type EnsembleFile struct {
	// Beam-wired instruments (mm/s)
	Beam1 [][]float64 `json:"beam1,omitempty"`
	Beam2 [][]float64 `json:"beam2,omitempty"`
	Beam3 [][]float64 `json:"beam3,omitempty"`
	Beam4 [][]float64 `json:"beam4,omitempty"`
	Beam5 [][]float64 `json:"beam5,omitempty"`

	// Earth-wired instruments (mm/s)
	East     [][]float64 `json:"east,omitempty"`
	North    [][]float64 `json:"north,omitempty"`
	Vertical [][]float64 `json:"vertical,omitempty"`
	Error    [][]float64 `json:"error,omitempty"`

	// Echo intensity (counts)
	EchoIntensity [][]float64 `json:"echo_intensity,omitempty"`

	// Per-sample telemetry
	HeadingCdeg  []float64 `json:"heading_cdeg"`
	PitchCdeg    []float64 `json:"pitch_cdeg"`
	RollCdeg     []float64 `json:"roll_cdeg"`
	PressureDaPa []float64 `json:"pressure_dapa"`
	Timestamps   []float64 `json:"timestamps"` // seconds since 1900-01-01
}

// Summary is the machine-readable record of one report run.
type Summary struct {
	RunID       string   `json:"run_id"`
	GeneratedAt string   `json:"generated_at"`
	InputFile   string   `json:"input_file"`
	Wiring      string   `json:"wiring"`
	Samples     int      `json:"samples"`
	Bins        int      `json:"bins"`
	Products    []string `json:"products"`
	OutputDir   string   `json:"output_dir"`
}

func main() {
	cfg := parseFlags()

	if cfg.InputFile == "" {
		log.Fatal("input file is required")
	}
	if cfg.ConfigFile == "" {
		log.Fatal("deployment config file is required")
	}

	deployment, err := config.LoadDeploymentConfig(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load deployment config: %v", err)
	}

	ensembles, err := loadEnsembles(cfg.InputFile)
	if err != nil {
		log.Fatalf("Failed to load ensembles: %v", err)
	}

	outputDir := profile.MakeReportOutputDir(cfg.OutputDir, cfg.InputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	summary, err := runReport(cfg, deployment, ensembles, outputDir)
	if err != nil {
		log.Fatalf("Report failed: %v", err)
	}

	log.Printf("Report %s written to %s (%d samples, %d bins, products: %v)",
		summary.RunID, summary.OutputDir, summary.Samples, summary.Bins, summary.Products)
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.InputFile, "input", "", "Path to ensembles JSON file")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Path to deployment config JSON")
	flag.StringVar(&cfg.OutputDir, "output", "reports", "Base output directory")
	flag.IntVar(&cfg.Sample, "sample", 0, "Sample index to chart")
	flag.BoolVar(&cfg.WritePNG, "png", false, "Also write PNG plots")

	flag.Parse()
	return cfg
}

func loadEnsembles(path string) (*EnsembleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ensembles file: %w", err)
	}
	ensembles := &EnsembleFile{}
	if err := json.Unmarshal(data, ensembles); err != nil {
		return nil, fmt.Errorf("parse ensembles JSON: %w", err)
	}
	return ensembles, nil
}

func runReport(cfg Config, deployment *config.DeploymentConfig, ensembles *EnsembleFile, outputDir string) (*Summary, error) {
	decl := adcp.FixedDeclination(deployment.GetDeclinationDeg())
	products, err := computeProducts(deployment, ensembles, decl)
	if err != nil {
		return nil, err
	}

	n := len(ensembles.PressureDaPa)
	binDepths, err := adcp.BinDepths(
		deployment.GetDistFirstBinCM(), deployment.GetBinSizeCM(), binCount(products),
		ensembles.PressureDaPa, deployment.GetUpwardLooking(), deployment.GetLatitude())
	if err != nil {
		return nil, fmt.Errorf("bin depths: %w", err)
	}

	chartData, err := profile.Prepare(binDepths, products, cfg.Sample)
	if err != nil {
		return nil, fmt.Errorf("prepare chart data: %w", err)
	}

	htmlFile := filepath.Join(outputDir, "report.html")
	f, err := os.Create(htmlFile)
	if err != nil {
		return nil, fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := profile.RenderHTML(chartData, "ADCP Velocity Profiles", f); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	if cfg.WritePNG {
		if _, err := profile.SavePNG(chartData, outputDir); err != nil {
			return nil, fmt.Errorf("write PNG plots: %w", err)
		}
	}

	summary := &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().Format(time.RFC3339),
		InputFile:   cfg.InputFile,
		Wiring:      deployment.GetWiring(),
		Samples:     n,
		Bins:        binCount(products),
		OutputDir:   outputDir,
	}
	for _, s := range chartData.Series {
		summary.Products = append(summary.Products, s.Name)
	}

	summaryFile := filepath.Join(outputDir, "summary.json")
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(summaryFile, data, 0644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	return summary, nil
}

// computeProducts runs the pipeline appropriate to the instrument wiring
// and returns the named data products in m/s.
func computeProducts(deployment *config.DeploymentConfig, ensembles *EnsembleFile, decl adcp.DeclinationFunc) (map[string]*mat.Dense, error) {
	n := len(ensembles.PressureDaPa)
	lat := fill(n, deployment.GetLatitude())
	lon := fill(n, deployment.GetLongitude())
	upward := make([]bool, n)
	for i := range upward {
		upward[i] = deployment.GetUpwardLooking()
	}

	products := make(map[string]*mat.Dense)

	switch deployment.GetWiring() {
	case config.WiringBeam:
		b1, err := toDense(ensembles.Beam1)
		if err != nil {
			return nil, fmt.Errorf("beam1: %w", err)
		}
		b2, err := toDense(ensembles.Beam2)
		if err != nil {
			return nil, fmt.Errorf("beam2: %w", err)
		}
		b3, err := toDense(ensembles.Beam3)
		if err != nil {
			return nil, fmt.Errorf("beam3: %w", err)
		}
		b4, err := toDense(ensembles.Beam4)
		if err != nil {
			return nil, fmt.Errorf("beam4: %w", err)
		}

		east, err := adcp.BeamEastward(b1, b2, b3, b4,
			ensembles.HeadingCdeg, ensembles.PitchCdeg, ensembles.RollCdeg, upward,
			lat, lon, ensembles.PressureDaPa, ensembles.Timestamps, decl)
		if err != nil {
			return nil, fmt.Errorf("eastward: %w", err)
		}
		products["eastward"] = east

		north, err := adcp.BeamNorthward(b1, b2, b3, b4,
			ensembles.HeadingCdeg, ensembles.PitchCdeg, ensembles.RollCdeg, upward,
			lat, lon, ensembles.PressureDaPa, ensembles.Timestamps, decl)
		if err != nil {
			return nil, fmt.Errorf("northward: %w", err)
		}
		products["northward"] = north

		vertical, err := adcp.BeamVertical(b1, b2, b3, b4,
			ensembles.HeadingCdeg, ensembles.PitchCdeg, ensembles.RollCdeg, upward)
		if err != nil {
			return nil, fmt.Errorf("vertical: %w", err)
		}
		products["vertical"] = vertical

		errVel, err := adcp.BeamError(b1, b2, b3, b4)
		if err != nil {
			return nil, fmt.Errorf("error velocity: %w", err)
		}
		products["error"] = errVel

		if deployment.GetBeamCount() == 5 && len(ensembles.Beam5) > 0 {
			b5, err := toDense(ensembles.Beam5)
			if err != nil {
				return nil, fmt.Errorf("beam5: %w", err)
			}
			trueVert, err := adcp.VBeamVerticalTrue(b1, b2, b3, b4, b5,
				ensembles.HeadingCdeg, ensembles.PitchCdeg, ensembles.RollCdeg, upward)
			if err != nil {
				return nil, fmt.Errorf("true vertical: %w", err)
			}
			products["vertical_true"] = trueVert
		}

	case config.WiringEarth:
		u, err := toDense(ensembles.East)
		if err != nil {
			return nil, fmt.Errorf("east: %w", err)
		}
		v, err := toDense(ensembles.North)
		if err != nil {
			return nil, fmt.Errorf("north: %w", err)
		}

		east, err := adcp.EarthEastward(u, v, lat, lon, ensembles.PressureDaPa, ensembles.Timestamps, decl)
		if err != nil {
			return nil, fmt.Errorf("eastward: %w", err)
		}
		products["eastward"] = east

		north, err := adcp.EarthNorthward(u, v, lat, lon, ensembles.PressureDaPa, ensembles.Timestamps, decl)
		if err != nil {
			return nil, fmt.Errorf("northward: %w", err)
		}
		products["northward"] = north

		if len(ensembles.Vertical) > 0 {
			w, err := toDense(ensembles.Vertical)
			if err != nil {
				return nil, fmt.Errorf("vertical: %w", err)
			}
			products["vertical"] = adcp.EarthVertical(w)
		}
		if len(ensembles.Error) > 0 {
			e, err := toDense(ensembles.Error)
			if err != nil {
				return nil, fmt.Errorf("error velocity: %w", err)
			}
			products["error"] = adcp.EarthError(e)
		}

	default:
		return nil, fmt.Errorf("unknown wiring %q", deployment.GetWiring())
	}

	return products, nil
}

// toDense converts a rectangular [][]float64 into a gonum matrix.
func toDense(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no samples")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d bins, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

func binCount(products map[string]*mat.Dense) int {
	for _, p := range products {
		_, c := p.Dims()
		return c
	}
	return 0
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
