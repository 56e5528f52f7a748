package models

// Dataset is the whole document written by one generation pass.
// Field order is the JSON key order: metadata first, then buoys.
type Dataset struct {
	Type     DatasetType `json:"-"`
	Metadata Metadata    `json:"metadata"`
	Buoys    []Buoy      `json:"buoys"`
}

// TotalReadings sums the readings of every buoy.
func (d *Dataset) TotalReadings() int {
	n := 0
	for i := range d.Buoys {
		n += len(d.Buoys[i].Readings)
	}
	return n
}

// Metadata describes the dataset edition and its parameters.
type Metadata struct {
	Version      string       `json:"version"`
	Generated    string       `json:"generated"` // RFC 3339, UTC
	DatasetID    string       `json:"datasetId"`
	Source       string       `json:"source"`
	License      string       `json:"license"`
	Description  string       `json:"description"`
	ContactEmail string       `json:"contactEmail"`
	Citation     string       `json:"citation"`
	Parameters   ParameterSet `json:"parameters"`
}

// ParameterInfo documents one tracked parameter.
type ParameterInfo struct {
	Unit        string `json:"unit"`
	Description string `json:"description"`
	Accuracy    string `json:"accuracy"`
}

// ParameterSet keeps the seven parameter descriptions in canonical order.
// A struct rather than a map so that JSON output order is stable.
type ParameterSet struct {
	Temperature     ParameterInfo `json:"temperature"`
	Salinity        ParameterInfo `json:"salinity"`
	PH              ParameterInfo `json:"ph"`
	DissolvedOxygen ParameterInfo `json:"dissolved_oxygen"`
	Turbidity       ParameterInfo `json:"turbidity"`
	Chlorophyll     ParameterInfo `json:"chlorophyll"`
	WaveHeight      ParameterInfo `json:"wave_height"`
}

// Lookup returns the description for p.
func (s *ParameterSet) Lookup(p Parameter) (ParameterInfo, bool) {
	switch p {
	case ParamTemperature:
		return s.Temperature, true
	case ParamSalinity:
		return s.Salinity, true
	case ParamPH:
		return s.PH, true
	case ParamDissolvedOxygen:
		return s.DissolvedOxygen, true
	case ParamTurbidity:
		return s.Turbidity, true
	case ParamChlorophyll:
		return s.Chlorophyll, true
	case ParamWaveHeight:
		return s.WaveHeight, true
	}
	return ParameterInfo{}, false
}
