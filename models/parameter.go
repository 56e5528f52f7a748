package models

// Parameter names one of the seven tracked measurements. The value doubles
// as the JSON key and the CSV column name.
type Parameter string

const (
	ParamTemperature     Parameter = "temperature"
	ParamSalinity        Parameter = "salinity"
	ParamPH              Parameter = "ph"
	ParamDissolvedOxygen Parameter = "dissolved_oxygen"
	ParamTurbidity       Parameter = "turbidity"
	ParamChlorophyll     Parameter = "chlorophyll"
	ParamWaveHeight      Parameter = "wave_height"
)

// Parameters is the canonical column order for every reading.
var Parameters = []Parameter{
	ParamTemperature, ParamSalinity, ParamPH, ParamDissolvedOxygen,
	ParamTurbidity, ParamChlorophyll, ParamWaveHeight,
}

// Precision is the number of decimals each parameter is rounded to.
var Precision = map[Parameter]int{
	ParamTemperature:     1,
	ParamSalinity:        1,
	ParamPH:              2,
	ParamDissolvedOxygen: 1,
	ParamTurbidity:       1,
	ParamChlorophyll:     2,
	ParamWaveHeight:      1,
}

// Floor holds the minimum for the parameters that cannot go negative.
// Temperature, salinity and pH are absent and never clamped.
var Floor = map[Parameter]float64{
	ParamDissolvedOxygen: 0.1,
	ParamTurbidity:       0.1,
	ParamChlorophyll:     0.01,
	ParamWaveHeight:      0.1,
}
