package utci

import "errors"

var (
	// ErrAirTemperatureRange indicates ta outside -50..50 °C.
	ErrAirTemperatureRange = errors.New("utci: air temperature outside -50..50 °C")

	// ErrRadiantDeltaRange indicates tmrt-ta outside -30..70 °C.
	ErrRadiantDeltaRange = errors.New("utci: tmrt-ta outside -30..70 °C")

	// ErrWindSpeedRange indicates va outside 0.5..17 m/s.
	ErrWindSpeedRange = errors.New("utci: wind speed outside 0.5..17 m/s")

	// ErrVaporPressureRange indicates vp outside 0..50 hPa.
	ErrVaporPressureRange = errors.New("utci: vapor pressure outside 0..50 hPa")

	// ErrNonFinite indicates a NaN or infinite input.
	ErrNonFinite = errors.New("utci: non-finite input")
)
