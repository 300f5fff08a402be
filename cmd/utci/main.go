package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/utci/pkg/thermal"
	"github.com/ja7ad/utci/pkg/types"
	"github.com/ja7ad/utci/pkg/utci"
)

var inputNames = []string{"ta", "rh", "tmrt", "va"}

type opts struct {
	log logOpts

	// single evaluation
	vp     bool
	asJSON bool
}

// row is one evaluated set of conditions as written to JSON, CSV and HTML.
type row struct {
	TA       float64 `json:"ta" csv:"ta"`
	RH       float64 `json:"rh" csv:"rh"`
	TMRT     float64 `json:"tmrt" csv:"tmrt"`
	VA       float64 `json:"va" csv:"va"`
	VP       float64 `json:"vp_hpa" csv:"vp_hpa"`
	UTCI     float64 `json:"utci" csv:"utci"`
	Stress   string  `json:"stress" csv:"stress"`
	InDomain bool    `json:"in_domain" csv:"in_domain"`
}

func newRow(c thermal.Conditions, res thermal.Result) row {
	rh := c.RelHumidity
	if c.HasVaporPressure {
		rh = float64(res.VaporPressure) / utci.SaturationVaporPressure(c.AirTemp) * 100
	}
	return row{
		TA:       c.AirTemp,
		RH:       rh,
		TMRT:     c.RadiantTemp,
		VA:       c.WindSpeed,
		VP:       float64(res.VaporPressure),
		UTCI:     float64(res.UTCI),
		Stress:   res.Stress.String(),
		InDomain: res.Advisory == nil,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "utci [TA RH TMRT VA]",
		Short: "Universal Thermal Climate Index calculator",
		Long: `The utci tool computes the Universal Thermal Climate Index from air
temperature (°C), relative humidity (%), mean radiant temperature (°C) and
wind speed at 10 m (m/s), using the 6th order polynomial approximation of the
UTCI reference model, and classifies the result into a thermal stress band.

Without arguments the four values are read interactively from stdin.
Separate negative values from flags with "--".

Examples:
  utci 25 60 30 2
  utci --vp 25 19.02 30 2
  utci -- -10 80 -15 10
  utci batch --in stations.csv --csv out.csv --html report.html`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != len(inputNames) {
				return fmt.Errorf("%w: got %d", ErrArgCount, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), o.log)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(cmd.InOrStdin(), cmd.OutOrStdout(), o, args)
		},
	}

	bindLogFlags(root.PersistentFlags(), &o.log)
	root.Flags().BoolVar(&o.vp, "vp", false, "treat the second value as vapor pressure in hPa instead of relative humidity")
	root.Flags().BoolVar(&o.asJSON, "json", false, "print the result as JSON")

	root.AddCommand(newBatchCmd(), newESCmd(), newVerifyCmd())
	return root
}

func runSingle(in io.Reader, out io.Writer, o opts, args []string) error {
	var (
		vals []float64
		err  error
	)
	names := inputNames
	if o.vp {
		names = []string{"ta", "vp", "tmrt", "va"}
	}

	if len(args) == 0 {
		vals, err = prompt(in, out, o.vp)
	} else {
		vals, err = parseFloats(args, names)
	}
	if err != nil {
		return err
	}

	c := thermal.Conditions{AirTemp: vals[0], RadiantTemp: vals[2], WindSpeed: vals[3]}
	if o.vp {
		c.VaporPressure, c.HasVaporPressure = vals[1], true
	} else {
		c.RelHumidity = vals[1]
	}

	acc := thermal.New(&thermal.Config{Logger: slog.Default()})
	res := acc.Apply(c)
	r := newRow(c, res)

	if o.asJSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	humidity := fmt.Sprintf("  Relative humidity:   %s\n", types.Percent(c.RelHumidity))
	if c.HasVaporPressure {
		humidity = ""
	}
	_, err = fmt.Fprintf(out, _single,
		types.Celsius(c.AirTemp), humidity, res.VaporPressure,
		types.Celsius(c.RadiantTemp), types.MetersPerSecond(c.WindSpeed),
		res.UTCI, res.Stress)
	return err
}

const _single = `UTCI Calculator
========================================
Input conditions:
  Air temperature:     %s
%s  Vapor pressure:      %s
  Mean radiant temp:   %s
  Wind speed (10m):    %s

Calculated UTCI:       %s
Thermal stress level:  %s
`
