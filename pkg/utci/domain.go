package utci

import (
	"errors"
	"fmt"
	"math"
)

// Bounds of the validated operating domain (inclusive).
const (
	MinAirTemp      = -50.0
	MaxAirTemp      = 50.0
	MinRadiantDelta = -30.0
	MaxRadiantDelta = 70.0
	MinWindSpeed    = 0.5
	MaxWindSpeed    = 17.0
	MinVaporPress   = 0.0
	MaxVaporPress   = 50.0
)

// CheckDomain reports whether the inputs of Approx lie inside the range the
// approximation was fitted on. It returns nil when they do, otherwise the
// joined sentinel errors of every violated bound.
//
// The result is advisory only: Approx evaluates any input.
func CheckDomain(ta, vp, tmrt, va float64) error {
	for _, v := range [...]float64{ta, vp, tmrt, va} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	var errs []error
	if ta < MinAirTemp || ta > MaxAirTemp {
		errs = append(errs, fmt.Errorf("%w: ta=%g", ErrAirTemperatureRange, ta))
	}
	if d := tmrt - ta; d < MinRadiantDelta || d > MaxRadiantDelta {
		errs = append(errs, fmt.Errorf("%w: tmrt-ta=%g", ErrRadiantDeltaRange, d))
	}
	if va < MinWindSpeed || va > MaxWindSpeed {
		errs = append(errs, fmt.Errorf("%w: va=%g", ErrWindSpeedRange, va))
	}
	if vp < MinVaporPress || vp > MaxVaporPress {
		errs = append(errs, fmt.Errorf("%w: vp=%g", ErrVaporPressureRange, vp))
	}
	return errors.Join(errs...)
}
