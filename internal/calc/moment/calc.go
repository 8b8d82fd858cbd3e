package moment

import (
	"Osdag/internal/calc/standard"
	"Osdag/internal/validate"
)

const Kind = "moment_capacity"

type Input struct {
	YieldStrength  any `json:"yield_strength"`  // MPa
	PlasticModulus any `json:"plastic_modulus"` // mm^3
}

type Result struct {
	MomentCapacityNmm float64 `json:"moment_capacity_nmm"`
	MomentCapacityKNm float64 `json:"moment_capacity_knm"`
	YieldStrength     float64 `json:"yield_strength"`
	PlasticModulus    float64 `json:"plastic_modulus"`
	GammaM0           float64 `json:"gamma_m0"`
	Status            string  `json:"status"`
	Unit              string  `json:"unit"`
}

func (r Result) Classification() string { return r.Status }

// Calculate returns the plastic moment capacity M = Fy*Zpz/gamma_m0.
func Calculate(in Input) (Result, error) {
	fy, err := validate.Positive(in.YieldStrength, "Yield Strength")
	if err != nil {
		return Result{}, err
	}
	zpz, err := validate.Positive(in.PlasticModulus, "Plastic Modulus")
	if err != nil {
		return Result{}, err
	}

	nmm := fy * zpz / standard.GammaM0
	return Result{
		MomentCapacityNmm: standard.Round(nmm, 2),
		MomentCapacityKNm: standard.Round(nmm/1e6, 2),
		YieldStrength:     fy,
		PlasticModulus:    zpz,
		GammaM0:           standard.GammaM0,
		Status:            "COMPUTED",
		Unit:              "kN-m",
	}, nil
}
