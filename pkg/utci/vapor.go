package utci

import "math"

// hardy holds the ITS-90 coefficients g0..g7 for saturation vapor pressure
// over water. g0..g6 weight tk^-2 .. tk^4, g7 weights ln(tk).
var hardy = [8]float64{
	-2.8365744e3,
	-6.028076559e3,
	1.954263612e1,
	-2.737830188e-2,
	1.6261698e-5,
	7.0229056e-10,
	-1.8680009e-13,
	2.7150305,
}

// SaturationVaporPressure returns the saturation vapor pressure over water in
// hPa for an air temperature ta in °C.
//
// Reference: Hardy, R.; ITS-90 Formulations for Vapor Pressure, Frostpoint
// Temperature, Dewpoint Temperature and Enhancement Factors in the Range
// -100 to 100 °C; Proceedings of Third International Symposium on Humidity
// and Moisture; NPL, London, 1998, pp. 214-221.
func SaturationVaporPressure(ta float64) float64 {
	tk := ta + 273.15

	es := hardy[7] * math.Log(tk)
	for i := 0; i < 7; i++ {
		es += hardy[i] * math.Pow(tk, float64(i-2))
	}

	// Pa -> hPa
	return math.Exp(es) * 0.01
}

// RelativeHumidityToVaporPressure converts relative humidity rh (percent,
// 0..100) at air temperature ta (°C) to water vapor pressure in hPa.
// rh is not range checked; values outside 0..100 scale linearly.
func RelativeHumidityToVaporPressure(ta, rh float64) float64 {
	return SaturationVaporPressure(ta) * rh / 100.0
}
