package analysis

import (
	"Osdag/internal/calc/loads"
	"Osdag/internal/calc/safety"
	"Osdag/internal/calc/utilization"
)

const Kind = "complete_analysis"

const (
	StatusAcceptable     = "ACCEPTABLE"
	StatusReviewRequired = "REVIEW REQUIRED"
)

type Input struct {
	DeadLoad        any `json:"dead_load"`
	LiveLoad        any `json:"live_load"`
	WindLoad        any `json:"wind_load"`
	EarthquakeLoad  any `json:"earthquake_load"`
	CombinationType any `json:"combination_type"`
	AppliedStress   any `json:"applied_stress"`
	AllowableStress any `json:"allowable_stress"`
	MinSafetyFactor any `json:"min_safety_factor"`
	SectionCapacity any `json:"section_capacity"`
}

type Result struct {
	FactoredLoad  loads.Result       `json:"factored_load_analysis"`
	SafetyFactor  safety.Result      `json:"safety_factor_analysis"`
	Utilization   utilization.Result `json:"utilization_analysis"`
	OverallStatus string             `json:"overall_status"`
	IsAcceptable  bool               `json:"is_acceptable"`
	Unit          string             `json:"unit"`
}

func (r Result) Classification() string { return r.OverallStatus }

// Calculate checks the section against the factored load: the design is
// acceptable only when the stress check is safe and the section adequate.
func Calculate(in Input) (Result, error) {
	factored, err := loads.Calculate(loads.Input{
		DeadLoad:        in.DeadLoad,
		LiveLoad:        in.LiveLoad,
		WindLoad:        in.WindLoad,
		EarthquakeLoad:  in.EarthquakeLoad,
		CombinationType: in.CombinationType,
	})
	if err != nil {
		return Result{}, err
	}
	sf, err := safety.Calculate(safety.Input{
		AppliedStress:   in.AppliedStress,
		AllowableStress: in.AllowableStress,
		MinSafetyFactor: in.MinSafetyFactor,
	})
	if err != nil {
		return Result{}, err
	}
	util, err := utilization.Calculate(utilization.Input{
		AppliedLoad:     factored.FactoredLoad,
		SectionCapacity: in.SectionCapacity,
	})
	if err != nil {
		return Result{}, err
	}

	ok := sf.IsSafe && util.IsAdequate
	status := StatusReviewRequired
	if ok {
		status = StatusAcceptable
	}
	return Result{
		FactoredLoad:  factored,
		SafetyFactor:  sf,
		Utilization:   util,
		OverallStatus: status,
		IsAcceptable:  ok,
		Unit:          factored.Unit,
	}, nil
}
