package thermal

import (
	"log/slog"

	"github.com/ja7ad/utci/pkg/stress"
	"github.com/ja7ad/utci/pkg/types"
)

// Config holds assessment options.
//   - Logger: destination for out-of-domain warnings (nil = slog.Default()).
//   - QuietDomain: do not log inputs outside the validated UTCI domain.
type Config struct {
	Logger      *slog.Logger
	QuietDomain bool
}

// _defaultConfig returns a Config pre-filled with defaults.
func _defaultConfig() *Config {
	return &Config{
		Logger:      slog.Default(),
		QuietDomain: false,
	}
}

// Conditions are the meteorological inputs of one assessment.
// Units:
//   - AirTemp, RadiantTemp: °C
//   - RelHumidity: percent (0..100), ignored when HasVaporPressure is set
//   - VaporPressure: hPa
//   - WindSpeed: m/s at 10 m height
type Conditions struct {
	AirTemp          float64
	RelHumidity      float64
	RadiantTemp      float64
	WindSpeed        float64
	VaporPressure    float64
	HasVaporPressure bool
}

// Result is the outcome for one set of conditions.
type Result struct {
	VaporPressure types.Hectopascal
	UTCI          types.Celsius
	Stress        stress.Category
	// Advisory is non-nil when the inputs are outside the validated domain.
	// The UTCI value is still computed.
	Advisory error
}

// Summary aggregates all results applied to an Accumulator.
type Summary struct {
	Count       int
	OutOfDomain int
	Mean        float64 // over finite UTCI values
	StdDev      float64
	Min         float64
	Max         float64
	ByStress    map[stress.Category]int
}
