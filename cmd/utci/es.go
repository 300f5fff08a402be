package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ja7ad/utci/pkg/utci"
)

var defaultESTemps = []float64{-40, -20, 0, 10, 20, 30, 40, 50, 100}

func newESCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "es [TEMP...]",
		Short: "Print saturation vapor pressure over water (Hardy ITS-90) for temperatures in °C",
		RunE: func(cmd *cobra.Command, args []string) error {
			temps := defaultESTemps
			if len(args) > 0 {
				var err error
				if temps, err = parseFloats(args, nil); err != nil {
					return err
				}
			}
			return printES(cmd.OutOrStdout(), temps)
		},
	}
}

func printES(w io.Writer, temps []float64) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "TA (°C)\tES (hPa)")
	fmt.Fprintln(tw, "-------\t--------")
	for _, ta := range temps {
		fmt.Fprintf(tw, "%.1f\t%.6f\n", ta, utci.SaturationVaporPressure(ta))
	}
	return tw.Flush()
}
