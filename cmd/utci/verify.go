package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ja7ad/utci/pkg/thermal"
)

type scenario struct {
	name             string
	ta, rh, tmrt, va float64
}

// verifyCases span comfortable, hot, cold, boundary and mixed conditions.
var verifyCases = []scenario{
	{"comfortable", 20, 50, 20, 1},
	{"warm", 25, 60, 30, 3},
	{"very hot and humid", 35, 70, 45, 0.5},
	{"extreme heat", 40, 30, 50, 2},
	{"cold and windy", -10, 80, -15, 10},
	{"very cold", -20, 60, -20, 5},
	{"freezing with high wind", 0, 90, -5, 15},
	{"minimum temperature", -50, 50, -50, 0.5},
	{"maximum temperature", 50, 20, 50, 17},
	{"cool air, warm radiation, high wind", 15, 40, 25, 8},
	{"hot air, cooler radiation, low wind", 30, 80, 20, 0.5},
}

var extremeScenarios = []scenario{
	{"Desert noon", 45, 10, 60, 1},
	{"Arctic storm", -30, 70, -35, 15},
	{"Tropical storm", 32, 95, 28, 16},
	{"Urban heat island", 38, 60, 55, 0.5},
	{"Mountain winter", -15, 40, -10, 5},
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Print saturation vapor pressure and UTCI for a fixed set of reference conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.OutOrStdout())
		},
	}
}

func runVerify(w io.Writer) error {
	fmt.Fprintln(w, "Saturation Vapor Pressure")
	if err := printES(w, defaultESTemps); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "UTCI Reference Conditions")
	tw := newTable(w)
	printTableHeader(tw)
	for _, s := range verifyCases {
		c := s.conditions()
		printTableRow(tw, newRow(c, thermal.Evaluate(c)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extreme Weather Scenarios")
	for _, s := range extremeScenarios {
		res := thermal.Evaluate(s.conditions())
		fmt.Fprintf(w, "%s\n  Conditions: Ta=%.1f°C, RH=%.0f%%, Tmrt=%.1f°C, Va=%.1fm/s\n  UTCI: %.2f°C (%s)\n\n",
			s.name, s.ta, s.rh, s.tmrt, s.va, float64(res.UTCI), res.Stress)
	}
	return nil
}

func (s scenario) conditions() thermal.Conditions {
	return thermal.Conditions{AirTemp: s.ta, RelHumidity: s.rh, RadiantTemp: s.tmrt, WindSpeed: s.va}
}
