package thermal

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ja7ad/utci/pkg/stress"
	"github.com/ja7ad/utci/pkg/types"
	"github.com/ja7ad/utci/pkg/utci"
)

// Evaluate computes vapor pressure, UTCI and stress category for c.
func Evaluate(c Conditions) Result {
	vp := c.VaporPressure
	if !c.HasVaporPressure {
		vp = utci.RelativeHumidityToVaporPressure(c.AirTemp, c.RelHumidity)
	}

	u := utci.Approx(c.AirTemp, vp, c.RadiantTemp, c.WindSpeed)
	return Result{
		VaporPressure: types.Hectopascal(vp),
		UTCI:          types.Celsius(u),
		Stress:        stress.Classify(u),
		Advisory:      utci.CheckDomain(c.AirTemp, vp, c.RadiantTemp, c.WindSpeed),
	}
}

// Accumulator evaluates a series of conditions and keeps the values needed
// for a Summary. It is not safe for concurrent use.
type Accumulator struct {
	cfg         *Config
	count       int
	outOfDomain int
	values      []float64
	byStress    map[stress.Category]int
}

// New creates an accumulator with the given config. A nil cfg or a nil
// Logger falls back to the defaults.
func New(cfg *Config) *Accumulator {
	merged := *_defaultConfig()
	if cfg != nil {
		if cfg.Logger != nil {
			merged.Logger = cfg.Logger
		}
		merged.QuietDomain = cfg.QuietDomain
	}

	return &Accumulator{
		cfg:      &merged,
		byStress: make(map[stress.Category]int),
	}
}

// Apply evaluates c, records the result and returns it.
func (a *Accumulator) Apply(c Conditions) Result {
	res := Evaluate(c)

	a.count++
	a.byStress[res.Stress]++
	if res.Advisory != nil {
		a.outOfDomain++
		if !a.cfg.QuietDomain {
			a.cfg.Logger.Warn("conditions outside validated UTCI domain",
				"ta", c.AirTemp, "vp", float64(res.VaporPressure),
				"tmrt", c.RadiantTemp, "va", c.WindSpeed,
				"utci", float64(res.UTCI), "err", res.Advisory)
		}
	}
	if u := float64(res.UTCI); !math.IsNaN(u) && !math.IsInf(u, 0) {
		a.values = append(a.values, u)
	}
	return res
}

// Count returns the number of applied conditions.
func (a *Accumulator) Count() int { return a.count }

// Summary returns statistics over all applied conditions. The zero Summary
// (with an empty ByStress map) is returned before the first Apply.
func (a *Accumulator) Summary() Summary {
	s := Summary{
		Count:       a.count,
		OutOfDomain: a.outOfDomain,
		ByStress:    make(map[stress.Category]int, len(a.byStress)),
	}
	for k, v := range a.byStress {
		s.ByStress[k] = v
	}
	if len(a.values) == 0 {
		return s
	}

	s.Min = floats.Min(a.values)
	s.Max = floats.Max(a.values)
	if len(a.values) == 1 {
		s.Mean = a.values[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(a.values, nil)
	return s
}
