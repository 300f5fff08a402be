package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var promptLabels = []string{
	"Air temperature (°C): ",
	"Relative humidity (%): ",
	"Mean radiant temperature (°C): ",
	"Wind speed at 10 m (m/s): ",
}

// prompt reads the four inputs line by line from in, writing a label to out
// before each. Blank lines are skipped.
func prompt(in io.Reader, out io.Writer, vp bool) ([]float64, error) {
	labels := append([]string(nil), promptLabels...)
	names := inputNames
	if vp {
		labels[1] = "Vapor pressure (hPa): "
		names = []string{"ta", "vp", "tmrt", "va"}
	}

	sc := bufio.NewScanner(in)
	vals := make([]float64, 0, len(labels))
	for i := 0; i < len(labels); {
		fmt.Fprint(out, labels[i])
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			return nil, fmt.Errorf("%w: got %d of %d values", ErrNoInput, len(vals), len(labels))
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := parseFloats([]string{line}, names[i:i+1])
		if err != nil {
			return nil, err
		}
		vals = append(vals, v[0])
		i++
	}
	fmt.Fprintln(out)
	return vals, nil
}
