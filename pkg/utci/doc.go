// Package utci computes the Universal Thermal Climate Index (UTCI) from air
// temperature, humidity, mean radiant temperature and wind speed.
//
// Overview
//
//   - Approx(ta, vp, tmrt, va) evaluates the published 6th order polynomial
//     approximation of the UTCI reference model (version a 0.002, October 2009).
//     It takes vapor pressure in hPa, not relative humidity.
//
//   - SaturationVaporPressure(ta) returns the saturation vapor pressure over
//     water in hPa (Hardy, ITS-90 formulation).
//
//   - RelativeHumidityToVaporPressure(ta, rh) scales the saturation vapor
//     pressure by rh/100 and is the usual way to feed Approx from station data.
//
// Typical use:
//
//	vp := utci.RelativeHumidityToVaporPressure(25, 60)
//	index := utci.Approx(25, vp, 30, 2)
//
// # Inputs
//
//	ta    : air temperature, °C              (-50 .. +50)
//	tmrt  : mean radiant temperature, °C     (ta-30 .. ta+70)
//	va    : wind speed at 10 m, m/s          (0.5 .. 17)
//	vp    : water vapor pressure, hPa        (0 .. 50)
//
// Values outside these ranges are evaluated anyway; the accuracy of the
// approximation there is unspecified. CheckDomain reports, but never enforces,
// whether a set of inputs lies inside them. NaN and ±Inf propagate unchanged.
//
// # Concurrency
//
// All functions are pure. The coefficient tables are package-level values that
// are never written after initialization, so calls need no synchronization.
package utci
