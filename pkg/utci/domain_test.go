package utci

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDomain(t *testing.T) {
	t.Run("inside", func(t *testing.T) {
		assert.NoError(t, CheckDomain(25, 19, 30, 2))
	})
	t.Run("corners_inclusive", func(t *testing.T) {
		assert.NoError(t, CheckDomain(-50, 0, -80, 0.5))
		assert.NoError(t, CheckDomain(50, 50, 120, 17))
	})
	t.Run("air_temperature", func(t *testing.T) {
		err := CheckDomain(51, 10, 51, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAirTemperatureRange)
		assert.NotErrorIs(t, err, ErrWindSpeedRange)
	})
	t.Run("radiant_delta", func(t *testing.T) {
		assert.ErrorIs(t, CheckDomain(20, 10, -10.5, 1), ErrRadiantDeltaRange)
		assert.ErrorIs(t, CheckDomain(20, 10, 90.5, 1), ErrRadiantDeltaRange)
	})
	t.Run("wind_speed", func(t *testing.T) {
		assert.ErrorIs(t, CheckDomain(20, 10, 20, 0.4), ErrWindSpeedRange)
		assert.ErrorIs(t, CheckDomain(20, 10, 20, 17.1), ErrWindSpeedRange)
	})
	t.Run("vapor_pressure", func(t *testing.T) {
		assert.ErrorIs(t, CheckDomain(20, -1, 20, 1), ErrVaporPressureRange)
		assert.ErrorIs(t, CheckDomain(20, 51, 20, 1), ErrVaporPressureRange)
	})
	t.Run("several", func(t *testing.T) {
		err := CheckDomain(60, 60, 60, 20)
		assert.ErrorIs(t, err, ErrAirTemperatureRange)
		assert.ErrorIs(t, err, ErrWindSpeedRange)
		assert.ErrorIs(t, err, ErrVaporPressureRange)
		assert.NotErrorIs(t, err, ErrRadiantDeltaRange)
	})
	t.Run("non_finite", func(t *testing.T) {
		assert.True(t, errors.Is(CheckDomain(math.NaN(), 10, 20, 1), ErrNonFinite))
		assert.True(t, errors.Is(CheckDomain(20, 10, math.Inf(1), 1), ErrNonFinite))
	})
}

func TestCheckDomain_DoesNotChangeApprox(t *testing.T) {
	// out-of-domain inputs are still evaluated
	require.Error(t, CheckDomain(60, 10, 60, 1))
	got := Approx(60, 10, 60, 1)
	assert.False(t, math.IsNaN(got))
}
