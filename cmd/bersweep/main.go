// Command bersweep runs a closed-form BER-vs-power sweep from a YAML
// scenario file, prints a summary table and optionally writes a CSV file and
// a PNG curve.
//
// Usage:
//
//	bersweep -config scenario.yaml [-csv out.csv] [-plot out.png] [-v]
//
// Scenario file:
//
//	order: 4
//	spacing: optimized            # or equally-spaced
//	ber_target: 1e-4
//	extinction_ratio_db: -10
//	powers_dbm: {from: -12, to: 3, step: 1}
//	workers: 4
//	noise:
//	  model: thermal-shot         # constant | thermal-shot | apd | signal-spontaneous
//	  thermal_variance: 1e-4
//	  shot_coefficient: 0.01
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/optiq/noise"
	"github.com/katalvlaran/optiq/pam"
	"github.com/katalvlaran/optiq/sweep"
)

// scenario mirrors the YAML layout of a sweep description.
type scenario struct {
	Order             int     `yaml:"order"`
	Spacing           string  `yaml:"spacing"`
	BERTarget         float64 `yaml:"ber_target"`
	ExtinctionRatioDB float64 `yaml:"extinction_ratio_db"`
	PowersDBm         struct {
		From float64 `yaml:"from"`
		To   float64 `yaml:"to"`
		Step float64 `yaml:"step"`
	} `yaml:"powers_dbm"`
	Workers int `yaml:"workers"`
	Noise   struct {
		Model               string  `yaml:"model"`
		Sigma               float64 `yaml:"sigma"`
		ThermalVariance     float64 `yaml:"thermal_variance"`
		ShotCoefficient     float64 `yaml:"shot_coefficient"`
		Gain                float64 `yaml:"gain"`
		ExcessNoise         float64 `yaml:"excess_noise"`
		SpontaneousVariance float64 `yaml:"spontaneous_variance"`
		BeatCoefficient     float64 `yaml:"beat_coefficient"`
	} `yaml:"noise"`
}

func main() {
	var (
		configPath = flag.String("config", "scenario.yaml", "YAML scenario file")
		csvPath    = flag.String("csv", "", "write per-point results to this CSV file")
		plotPath   = flag.String("plot", "", "write a log10(BER)-vs-power PNG to this file")
		verbose    = flag.Bool("v", false, "stream optimizer iterations to stdout")
	)
	flag.Parse()

	if err := run(*configPath, *csvPath, *plotPath, *verbose); err != nil {
		color.Red("bersweep: %v", err)
		os.Exit(1)
	}
}

func run(configPath, csvPath, plotPath string, verbose bool) error {
	sc, err := loadScenario(configPath)
	if err != nil {
		return err
	}

	cfg, model, err := buildConfig(sc)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Optimizer = pam.DefaultOptions()
		cfg.Optimizer.Trace = os.Stdout
	}

	dbm := gridDBm(sc)
	res, err := sweep.Run(context.Background(), cfg, model)
	if err != nil {
		return errors.Wrap(err, "running sweep")
	}

	report(os.Stdout, dbm, res)

	if csvPath != "" {
		if err := writeCSV(csvPath, res); err != nil {
			return err
		}
		fmt.Printf("CSV saved in %s\n", csvPath)
	}
	if plotPath != "" {
		if err := plotCurve(plotPath, dbm, res); err != nil {
			return err
		}
		fmt.Printf("Plot saved in %s\n", plotPath)
	}

	return nil
}

// loadScenario reads and decodes the YAML scenario.
func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario")
	}
	sc := &scenario{}
	if err := yaml.Unmarshal(raw, sc); err != nil {
		return nil, errors.Wrap(err, "decoding scenario")
	}

	return sc, nil
}

// buildConfig translates the scenario into a sweep.Config plus noise model.
func buildConfig(sc *scenario) (sweep.Config, pam.NoiseModel, error) {
	cfg := sweep.Config{
		Order:             sc.Order,
		BERTarget:         sc.BERTarget,
		ExtinctionRatioDB: sc.ExtinctionRatioDB,
		Workers:           sc.Workers,
	}
	switch sc.Spacing {
	case "equally-spaced", "":
		cfg.Spacing = pam.EquallySpaced
	case "optimized":
		cfg.Spacing = pam.Optimized
	default:
		return cfg, nil, errors.Errorf("unknown spacing %q", sc.Spacing)
	}
	for _, d := range gridDBm(sc) {
		cfg.Powers = append(cfg.Powers, math.Pow(10, d/10)) // dBm → mW
	}

	var model pam.NoiseModel
	switch sc.Noise.Model {
	case "constant":
		model = noise.Constant{Sigma0: sc.Noise.Sigma}
	case "thermal-shot", "":
		model = noise.ThermalShot{
			ThermalVariance: sc.Noise.ThermalVariance,
			ShotCoefficient: sc.Noise.ShotCoefficient,
		}
	case "apd":
		model = noise.APD{
			ThermalVariance: sc.Noise.ThermalVariance,
			ShotCoefficient: sc.Noise.ShotCoefficient,
			Gain:            sc.Noise.Gain,
			ExcessNoise:     sc.Noise.ExcessNoise,
		}
	case "signal-spontaneous":
		model = noise.SignalSpontaneous{
			SpontaneousVariance: sc.Noise.SpontaneousVariance,
			BeatCoefficient:     sc.Noise.BeatCoefficient,
		}
	default:
		return cfg, nil, errors.Errorf("unknown noise model %q", sc.Noise.Model)
	}

	return cfg, model, nil
}

// gridDBm expands the from/to/step range into explicit dBm points.
func gridDBm(sc *scenario) []float64 {
	step := sc.PowersDBm.Step
	if step <= 0 {
		step = 1
	}
	var out []float64
	for d := sc.PowersDBm.From; d <= sc.PowersDBm.To+1e-9; d += step {
		out = append(out, d)
	}

	return out
}

// report prints the sweep summary table and colorizes any diagnostics.
func report(w *os.File, dbm []float64, res *sweep.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Ptx [dBm]", "Ptx [mW]", "BER", "log10(BER)"})
	for i, pt := range res.Points {
		table.Append([]string{
			strconv.FormatFloat(dbm[i], 'f', 1, 64),
			strconv.FormatFloat(pt.Power, 'f', 4, 64),
			strconv.FormatFloat(pt.BERTotal, 'e', 3, 64),
			strconv.FormatFloat(math.Log10(pt.BERTotal), 'f', 2, 64),
		})
	}
	table.Render()

	if res.Iterations > 0 {
		fmt.Printf("Optimizer converged after %d iterations\n", res.Iterations)
	}
	for _, d := range res.Diagnostics {
		color.Yellow("warning: %s (iter %d, level %d): %s", d.Kind, d.Iteration, d.LevelIndex, d.Detail)
	}
}

// writeCSV exports the sweep through the package encoder.
func writeCSV(path string, res *sweep.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating CSV file")
	}
	defer f.Close()

	return sweep.WriteCSV(f, res)
}

// plotCurve renders log10(BER) against transmit power in dBm.
func plotCurve(path string, dbm []float64, res *sweep.Result) error {
	pts := make(plotter.XYs, len(res.Points))
	for i, pt := range res.Points {
		pts[i].X = dbm[i]
		pts[i].Y = math.Log10(pt.BERTotal)
	}

	p, err := plot.New()
	if err != nil {
		return errors.Wrap(err, "creating plot")
	}
	p.Title.Text = "Closed-form BER vs transmit power"
	p.X.Label.Text = "Ptx [dBm]"
	p.Y.Label.Text = "log10(BER)"
	if err := plotutil.AddLinePoints(p, "BER", pts); err != nil {
		return errors.Wrap(err, "adding curve")
	}

	return errors.Wrap(p.Save(8*vg.Inch, 5*vg.Inch, path), "saving plot")
}
