package utilization

import (
	"math"

	"Osdag/internal/calc/standard"
	"Osdag/internal/validate"
)

const Kind = "utilization"

// Band upper bounds, inclusive.
const (
	underUtilizedMax = 0.7
	adequateMax      = 1.0
	marginalMax      = 1.1
)

type Input struct {
	AppliedLoad     any `json:"applied_load"`
	SectionCapacity any `json:"section_capacity"`
}

type Result struct {
	UtilizationRatio   float64 `json:"utilization_ratio"`
	UtilizationPercent float64 `json:"utilization_percent"`
	IsAdequate         bool    `json:"is_adequate"`
	ReserveCapacity    float64 `json:"reserve_capacity"`
	Status             string  `json:"status"`
	AppliedLoad        float64 `json:"applied_load"`
	SectionCapacity    float64 `json:"section_capacity"`
	Unit               string  `json:"unit"`
}

func (r Result) Classification() string { return r.Status }

func Calculate(in Input) (Result, error) {
	load, err := validate.NonNegative(in.AppliedLoad, "Applied Load")
	if err != nil {
		return Result{}, err
	}
	capacity, err := validate.Positive(in.SectionCapacity, "Section Capacity")
	if err != nil {
		return Result{}, err
	}

	ratio := load / capacity
	reserve := math.Max(0, (1.0-ratio)*100)

	return Result{
		UtilizationRatio:   standard.Round(ratio, 4),
		UtilizationPercent: standard.Round(ratio*100, 2),
		IsAdequate:         ratio <= adequateMax,
		ReserveCapacity:    standard.Round(reserve, 2),
		Status:             Classify(ratio),
		AppliedLoad:        load,
		SectionCapacity:    capacity,
		Unit:               "kN",
	}, nil
}

// Classify bands an unrounded utilization ratio.
func Classify(ratio float64) string {
	switch {
	case ratio <= underUtilizedMax:
		return "UNDER-UTILIZED"
	case ratio <= adequateMax:
		return "ADEQUATE"
	case ratio <= marginalMax:
		return "MARGINALLY OVERSTRESSED"
	default:
		return "OVERSTRESSED"
	}
}
