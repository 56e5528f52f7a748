package synth

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"reef-datagen/models"
	"reef-datagen/utils"
)

// Edition bounds. Version minor/patch, citation year and the build-time
// jitter are drawn per run to simulate distinct dataset editions.
const (
	maxVersionMinor = 3
	maxVersionPatch = 9
	firstCiteYear   = 2022
	lastCiteYear    = 2024
	maxJitter       = time.Hour
)

// DefaultParameters documents the seven tracked parameters.
func DefaultParameters() models.ParameterSet {
	return models.ParameterSet{
		Temperature:     models.ParameterInfo{Unit: "°C", Description: "Water temperature at 1m depth", Accuracy: "±0.1°C"},
		Salinity:        models.ParameterInfo{Unit: "PSU", Description: "Practical Salinity Unit measurement", Accuracy: "±0.01 PSU"},
		PH:              models.ParameterInfo{Unit: "pH", Description: "pH level of seawater", Accuracy: "±0.01 pH"},
		DissolvedOxygen: models.ParameterInfo{Unit: "mg/L", Description: "Dissolved oxygen concentration", Accuracy: "±0.1 mg/L"},
		Turbidity:       models.ParameterInfo{Unit: "NTU", Description: "Water turbidity", Accuracy: "±0.5 NTU"},
		Chlorophyll:     models.ParameterInfo{Unit: "µg/L", Description: "Chlorophyll-a concentration", Accuracy: "±0.2 µg/L"},
		WaveHeight:      models.ParameterInfo{Unit: "m", Description: "Significant wave height", Accuracy: "±0.1m"},
	}
}

// Metadata builds the metadata block for a run started at now.
func (g *Generator) Metadata(now time.Time) (models.Metadata, error) {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return models.Metadata{}, fmt.Errorf("dataset id: %w", err)
	}

	t := g.dtype
	version := fmt.Sprintf("1.%d.%d-dummy-%s", g.intn(0, maxVersionMinor), g.intn(0, maxVersionPatch), t)
	generated := now.Add(-time.Duration(g.rng.Int63n(int64(maxJitter/time.Second))) * time.Second)
	year := g.intn(firstCiteYear, lastCiteYear)

	return models.Metadata{
		Version:      version,
		Generated:    utils.FormatISO(generated),
		DatasetID:    id.String(),
		Source:       "REEFlect Ocean Monitoring Network (Context-Specific Dummy Data Generator)",
		License:      "CC BY 4.0",
		Description:  fmt.Sprintf("Large set of realistic dummy buoy data (type: %s) from the OpenOcean platform", t),
		ContactEmail: fmt.Sprintf("data-dummy-%s@reeflect.org", t),
		Citation:     fmt.Sprintf("REEFlect Ocean Monitoring Network (Dummy Data Generator, %d, type: %s)", year, t),
		Parameters:   DefaultParameters(),
	}, nil
}
