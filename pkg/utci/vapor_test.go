package utci

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturationVaporPressure_ReferencePoints(t *testing.T) {
	cases := []struct {
		ta, want, tol float64
	}{
		{0.0, 6.112, 0.01},
		{20.0, 23.388, 0.1},
		{100.0, 1013.25, 1.0}, // 1 atm
		{-40.0, 0.1903, 0.01},
		{10.0, 12.281, 0.5},
		{30.0, 42.455, 0.5},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("ta_%g", tc.ta), func(t *testing.T) {
			got := SaturationVaporPressure(tc.ta)
			assert.InDelta(t, tc.want, got, tc.tol)
			t.Logf("es(%.1f) = %.6f hPa", tc.ta, got)
		})
	}
}

func TestSaturationVaporPressure_MatchesReferenceModel(t *testing.T) {
	// values of the reference implementation
	want := map[float64]float64{
		-40: 0.19031097764939225,
		-20: 1.255835052890491,
		0:   6.112129106975886,
		10:  12.28139074509237,
		20:  23.392623958624945,
		30:  42.470462136614955,
		40:  73.85299073472369,
		50:  123.52690006158033,
		100: 1014.1777002879223,
	}
	for ta, es := range want {
		assert.InEpsilon(t, es, SaturationVaporPressure(ta), 1e-12, "ta=%g", ta)
	}
}

func TestSaturationVaporPressure_StrictlyIncreasing(t *testing.T) {
	prev := SaturationVaporPressure(-50)
	for ta := -49.9; ta <= 50.0; ta += 0.1 {
		cur := SaturationVaporPressure(ta)
		require.Greater(t, cur, prev, "not increasing at ta=%.1f", ta)
		prev = cur
	}
}

func TestSaturationVaporPressure_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(SaturationVaporPressure(math.NaN())))
	// below absolute zero the logarithm is undefined
	assert.True(t, math.IsNaN(SaturationVaporPressure(-300)))
}

func TestRelativeHumidityToVaporPressure_Zero(t *testing.T) {
	for ta := -50.0; ta <= 50.0; ta += 5 {
		assert.Equal(t, 0.0, RelativeHumidityToVaporPressure(ta, 0.0), "ta=%g", ta)
	}
}

func TestRelativeHumidityToVaporPressure_Saturated(t *testing.T) {
	for ta := -50.0; ta <= 50.0; ta += 2.5 {
		assert.InDelta(t, SaturationVaporPressure(ta), RelativeHumidityToVaporPressure(ta, 100.0), 1e-3, "ta=%g", ta)
	}
}

func TestRelativeHumidityToVaporPressure_Bounded(t *testing.T) {
	for ta := -40.0; ta <= 50.0; ta += 5 {
		es := SaturationVaporPressure(ta)
		for rh := 0.0; rh <= 100.0; rh += 10 {
			vp := RelativeHumidityToVaporPressure(ta, rh)
			require.GreaterOrEqual(t, vp, 0.0, "ta=%g rh=%g", ta, rh)
			require.LessOrEqual(t, vp, es+1e-12, "ta=%g rh=%g", ta, rh)
		}
	}
}

func TestRelativeHumidityToVaporPressure_Extremes(t *testing.T) {
	vp := RelativeHumidityToVaporPressure(-40, 50)
	assert.Greater(t, vp, 0.0)
	assert.Less(t, vp, SaturationVaporPressure(-40))

	vp = RelativeHumidityToVaporPressure(50, 30)
	assert.Greater(t, vp, 0.0)
	assert.Less(t, vp, SaturationVaporPressure(50))
}

func TestRelativeHumidityToVaporPressure_Extrapolates(t *testing.T) {
	es := SaturationVaporPressure(20)
	assert.InDelta(t, 1.5*es, RelativeHumidityToVaporPressure(20, 150), 1e-9)
	assert.InDelta(t, -0.1*es, RelativeHumidityToVaporPressure(20, -10), 1e-9)
}
