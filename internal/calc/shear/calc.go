package shear

import (
	"math"

	"Osdag/internal/calc/standard"
	"Osdag/internal/validate"
)

const Kind = "shear_capacity"

type Input struct {
	YieldStrength any `json:"yield_strength"` // MPa
	ShearArea     any `json:"shear_area"`     // mm^2
}

type Result struct {
	ShearCapacityN  float64 `json:"shear_capacity_n"`
	ShearCapacityKN float64 `json:"shear_capacity_kn"`
	YieldStrength   float64 `json:"yield_strength"`
	ShearArea       float64 `json:"shear_area"`
	GammaM0         float64 `json:"gamma_m0"`
	Status          string  `json:"status"`
	Unit            string  `json:"unit"`
}

func (r Result) Classification() string { return r.Status }

// Calculate returns the plastic shear resistance V = Fy*Av/(sqrt(3)*gamma_m0).
func Calculate(in Input) (Result, error) {
	fy, err := validate.Positive(in.YieldStrength, "Yield Strength")
	if err != nil {
		return Result{}, err
	}
	av, err := validate.Positive(in.ShearArea, "Shear Area")
	if err != nil {
		return Result{}, err
	}

	n := fy * av / (math.Sqrt(3) * standard.GammaM0)
	return Result{
		ShearCapacityN:  standard.Round(n, 2),
		ShearCapacityKN: standard.Round(n/1000, 2),
		YieldStrength:   fy,
		ShearArea:       av,
		GammaM0:         standard.GammaM0,
		Status:          "COMPUTED",
		Unit:            "kN",
	}, nil
}
