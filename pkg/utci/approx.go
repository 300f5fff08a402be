package utci

// Approx returns the UTCI in °C for air temperature ta (°C), water vapor
// pressure vp (hPa), mean radiant temperature tmrt (°C) and wind speed va at
// 10 m height (m/s).
//
// The result is ta plus the polynomial offset evaluated over ta, va,
// d_tmrt = tmrt - ta and pa = vp / 10 (kPa). Each monomial is built by
// repeated multiplication and the terms are added one after another onto ta,
// which matches the operation order of the published UTCI code.
func Approx(ta, vp, tmrt, va float64) float64 {
	dTmrt := tmrt - ta
	pa := vp / 10.0 // kPa

	utci := ta
	for i := range terms {
		t := &terms[i]
		v := t.Coef
		for n := uint8(0); n < t.Ta; n++ {
			v *= ta
		}
		for n := uint8(0); n < t.Va; n++ {
			v *= va
		}
		for n := uint8(0); n < t.DTmrt; n++ {
			v *= dTmrt
		}
		for n := uint8(0); n < t.Pa; n++ {
			v *= pa
		}
		utci += v
	}
	return utci
}
