package deflection

import (
	"fmt"

	"Osdag/internal/calc/standard"
	"Osdag/internal/validate"
)

const Kind = "deflection"

// Utilization at or below this is reported as well within limits.
const comfortableUtilization = 0.8

type Input struct {
	ActualDeflection any `json:"actual_deflection"` // mm
	SpanLength       any `json:"span_length"`       // mm
	// LimitRatio is the divisor n in L/n. It takes precedence over Category.
	LimitRatio any `json:"deflection_limit"`
	Category   any `json:"deflection_category"`
}

type Result struct {
	AllowableDeflection float64 `json:"allowable_deflection"`
	ActualDeflection    float64 `json:"actual_deflection"`
	IsServiceable       bool    `json:"is_serviceable"`
	Utilization         float64 `json:"utilization"`
	UtilizationPercent  float64 `json:"utilization_percent"`
	Status              string  `json:"status"`
	SpanLength          float64 `json:"span_length"`
	LimitRatio          string  `json:"limit_ratio"`
	Unit                string  `json:"unit"`
}

func (r Result) Classification() string { return r.Status }

func Calculate(in Input) (Result, error) {
	actual, err := validate.NonNegative(in.ActualDeflection, "Actual Deflection")
	if err != nil {
		return Result{}, err
	}
	span, err := validate.Positive(in.SpanLength, "Span Length")
	if err != nil {
		return Result{}, err
	}
	ratio, err := limitRatio(in)
	if err != nil {
		return Result{}, err
	}

	allowable := span / float64(ratio)
	serviceable := actual <= allowable
	util := actual / allowable

	status := "EXCEEDS LIMITS"
	switch {
	case serviceable && util <= comfortableUtilization:
		status = "WELL WITHIN LIMITS"
	case serviceable:
		status = "WITHIN LIMITS"
	}

	return Result{
		AllowableDeflection: standard.Round(allowable, 2),
		ActualDeflection:    actual,
		IsServiceable:       serviceable,
		Utilization:         standard.Round(util, 4),
		UtilizationPercent:  standard.Round(util*100, 2),
		Status:              status,
		SpanLength:          span,
		LimitRatio:          fmt.Sprintf("L/%d", ratio),
		Unit:                "mm",
	}, nil
}

func limitRatio(in Input) (int, error) {
	if validate.Present(in.LimitRatio) {
		return validate.DeflectionRatio(in.LimitRatio, "Deflection Limit Ratio")
	}
	if validate.Present(in.Category) {
		limit, err := validate.DeflectionCategory(in.Category)
		if err != nil {
			return 0, err
		}
		return limit.Ratio, nil
	}
	return standard.DefaultDeflectionRatio, nil
}
