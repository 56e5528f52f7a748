package models

import (
	"fmt"
	"strings"
)

// DatasetType is the focus tag selecting which parameter gets wide variation.
type DatasetType string

const (
	TypeTemperature     DatasetType = "temperature"
	TypeSalinity        DatasetType = "salinity"
	TypePH              DatasetType = "ph"
	TypeDissolvedOxygen DatasetType = "dissolved_oxygen"
	TypeReef            DatasetType = "reef"
	TypeTurbidity       DatasetType = "turbidity"
	TypeChlorophyll     DatasetType = "chlorophyll"
	TypeWaveHeight      DatasetType = "wave_height"
)

// DatasetTypes lists every accepted tag in CLI help order.
var DatasetTypes = []DatasetType{
	TypeTemperature, TypeSalinity, TypePH, TypeDissolvedOxygen,
	TypeReef, TypeTurbidity, TypeChlorophyll, TypeWaveHeight,
}

// ParseDatasetType validates s against the fixed tag set. Matching is exact:
// the tags are lower-case identifiers and "Reef" is rejected like "bogus".
func ParseDatasetType(s string) (DatasetType, error) {
	for _, t := range DatasetTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: dataset type %q (choose from %s)",
		ErrInvalidArgument, s, DatasetTypeChoices())
}

// DatasetTypeChoices renders the accepted tags for help and error text.
func DatasetTypeChoices() string {
	names := make([]string, len(DatasetTypes))
	for i, t := range DatasetTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Focus reports which parameter the tag widens. Reef has no single focus.
func (t DatasetType) Focus() (Parameter, bool) {
	if t == TypeReef {
		return "", false
	}
	return Parameter(t), true
}

func (t DatasetType) String() string { return string(t) }
