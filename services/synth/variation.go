package synth

import "reef-datagen/models"

// band holds the half-widths of the uniform variation drawn around a base.
type band struct {
	Focus      float64 // parameter matches the dataset type
	Background float64 // another parameter is the focus
	Reef       float64 // reef datasets: every parameter
	ReefDrift  float64 // reef datasets: drift reached at the end of a series
}

var bands = map[models.Parameter]band{
	models.ParamTemperature:     {Focus: 2.5, Background: 0.1, Reef: 0.5, ReefDrift: 1.0},
	models.ParamSalinity:        {Focus: 1.0, Background: 0.05, Reef: 0.2, ReefDrift: 0.5},
	models.ParamPH:              {Focus: 0.2, Background: 0.01, Reef: 0.05, ReefDrift: 0.1},
	models.ParamDissolvedOxygen: {Focus: 1.5, Background: 0.1, Reef: 0.3, ReefDrift: 0.5},
	models.ParamTurbidity:       {Focus: 5, Background: 0.2, Reef: 1, ReefDrift: 2.0},
	models.ParamChlorophyll:     {Focus: 2, Background: 0.1, Reef: 0.5, ReefDrift: 1.0},
	models.ParamWaveHeight:      {Focus: 1, Background: 0.1, Reef: 0.5, ReefDrift: 1.0},
}

// span is a closed interval a per-buoy base value is drawn from.
type span struct{ Min, Max float64 }

var baseSpans = map[models.Parameter]span{
	models.ParamTemperature:     {15, 25},
	models.ParamSalinity:        {34, 36},
	models.ParamPH:              {7.9, 8.2},
	models.ParamDissolvedOxygen: {6, 8},
	models.ParamTurbidity:       {0.5, 5},
	models.ParamChlorophyll:     {0.1, 2},
	models.ParamWaveHeight:      {0.2, 1.5},
}

// Bases are the per-buoy anchors every reading of that buoy oscillates around.
type Bases map[models.Parameter]float64

// progress is r/n, the fraction of the series already emitted.
func progress(r, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(r) / float64(n)
}
