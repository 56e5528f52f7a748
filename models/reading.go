package models

import "time"

// Reading is one timestamped seven-parameter measurement.
type Reading struct {
	Timestamp       time.Time `json:"timestamp"`        // UTC
	Temperature     float64   `json:"temperature"`      // °C
	Salinity        float64   `json:"salinity"`         // PSU
	PH              float64   `json:"ph"`               // dimensionless
	DissolvedOxygen float64   `json:"dissolved_oxygen"` // mg/L
	Turbidity       float64   `json:"turbidity"`        // NTU
	Chlorophyll     float64   `json:"chlorophyll"`      // µg/L
	WaveHeight      float64   `json:"wave_height"`      // m
}

// Value returns the field for p, or 0 for an unknown parameter.
func (r *Reading) Value(p Parameter) float64 {
	switch p {
	case ParamTemperature:
		return r.Temperature
	case ParamSalinity:
		return r.Salinity
	case ParamPH:
		return r.PH
	case ParamDissolvedOxygen:
		return r.DissolvedOxygen
	case ParamTurbidity:
		return r.Turbidity
	case ParamChlorophyll:
		return r.Chlorophyll
	case ParamWaveHeight:
		return r.WaveHeight
	}
	return 0
}

// Set assigns v to the field for p. Unknown parameters are ignored.
func (r *Reading) Set(p Parameter, v float64) {
	switch p {
	case ParamTemperature:
		r.Temperature = v
	case ParamSalinity:
		r.Salinity = v
	case ParamPH:
		r.PH = v
	case ParamDissolvedOxygen:
		r.DissolvedOxygen = v
	case ParamTurbidity:
		r.Turbidity = v
	case ParamChlorophyll:
		r.Chlorophyll = v
	case ParamWaveHeight:
		r.WaveHeight = v
	}
}

// Fields returns the seven parameter values keyed by name.
func (r *Reading) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(Parameters))
	for _, p := range Parameters {
		out[string(p)] = r.Value(p)
	}
	return out
}
