package types

import "fmt"

// Celsius is a temperature (or UTCI index value) in degrees Celsius.
type Celsius float64

// Hectopascal is a (vapor) pressure in hPa.
type Hectopascal float64

// MetersPerSecond is a wind speed in m/s.
type MetersPerSecond float64

// Percent is a relative humidity in percent (0..100).
type Percent float64

func (c Celsius) String() string { return fmt.Sprintf("%.1f °C", float64(c)) }

// Kelvin returns the absolute temperature.
func (c Celsius) Kelvin() float64 { return float64(c) + 273.15 }

func (p Hectopascal) String() string { return fmt.Sprintf("%.2f hPa", float64(p)) }

// Pa returns the pressure in pascals.
func (p Hectopascal) Pa() float64 { return float64(p) * 100 }

// KPa returns the pressure in kilopascals.
func (p Hectopascal) KPa() float64 { return float64(p) / 10 }

func (v MetersPerSecond) String() string { return fmt.Sprintf("%.1f m/s", float64(v)) }

func (h Percent) String() string { return fmt.Sprintf("%.0f %%", float64(h)) }

// Fraction returns h as a fraction (0..1).
func (h Percent) Fraction() float64 { return float64(h) / 100 }
