package material

import (
	"Osdag/internal/calc/standard"
	"Osdag/internal/validate"
)

const Kind = "material_properties"

type Input struct {
	SteelGrade any `json:"steel_grade"`
}

type Result struct {
	standard.SteelGrade
	ElasticModulus float64 `json:"elastic_modulus"`
	Status         string  `json:"status"`
	Unit           string  `json:"unit"`
}

func (r Result) Classification() string { return r.Status }

func Calculate(in Input) (Result, error) {
	grade, err := validate.SteelGrade(in.SteelGrade)
	if err != nil {
		return Result{}, err
	}
	return Result{
		SteelGrade:     grade,
		ElasticModulus: standard.ElasticModulusMPa,
		Status:         "COMPUTED",
		Unit:           "MPa",
	}, nil
}
