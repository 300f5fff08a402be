package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits_String(t *testing.T) {
	cases := []struct {
		in   fmt.Stringer
		want string
	}{
		{Celsius(25.634), "25.6 °C"},
		{Celsius(-40.69), "-40.7 °C"},
		{Celsius(0), "0.0 °C"},
		{Hectopascal(19.0195), "19.02 hPa"},
		{Hectopascal(0), "0.00 hPa"},
		{MetersPerSecond(2), "2.0 m/s"},
		{MetersPerSecond(0.5), "0.5 m/s"},
		{Percent(60), "60 %"},
		{Percent(100), "100 %"},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestUnits_Conversions(t *testing.T) {
	assert.InDelta(t, 273.15, Celsius(0).Kelvin(), 1e-12)
	assert.InDelta(t, 298.15, Celsius(25).Kelvin(), 1e-12)

	p := Hectopascal(19.5)
	assert.InDelta(t, 1950.0, p.Pa(), 1e-9)
	assert.InDelta(t, 1.95, p.KPa(), 1e-12)

	assert.InDelta(t, 0.6, Percent(60).Fraction(), 1e-12)
}
