package dispatch

import (
	"fmt"
	"strings"

	"Osdag/internal/calc/analysis"
	"Osdag/internal/calc/deflection"
	"Osdag/internal/calc/loads"
	"Osdag/internal/calc/material"
	"Osdag/internal/calc/moment"
	"Osdag/internal/calc/safety"
	"Osdag/internal/calc/shear"
	"Osdag/internal/calc/utilization"
	"Osdag/internal/validate"
)

// Kind selects one calculator. The set is closed; values outside Kinds are
// rejected by ParseKind.
type Kind string

const (
	FactoredLoad       Kind = loads.Kind
	SafetyFactor       Kind = safety.Kind
	Utilization        Kind = utilization.Kind
	MomentCapacity     Kind = moment.Kind
	Deflection         Kind = deflection.Kind
	ShearCapacity      Kind = shear.Kind
	MaterialProperties Kind = material.Kind
	CompleteAnalysis   Kind = analysis.Kind
)

const ParamKind = "calculation_type"

var kinds = []Kind{
	FactoredLoad,
	SafetyFactor,
	Utilization,
	MomentCapacity,
	Deflection,
	ShearCapacity,
	MaterialProperties,
	CompleteAnalysis,
}

func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

func ParseKind(s string) (Kind, error) {
	key := Kind(strings.ToLower(strings.TrimSpace(s)))
	if key == "" {
		return "", validate.Invalid(ParamKind, validate.ReasonMissing, "Please select a calculation type")
	}
	for _, k := range kinds {
		if k == key {
			return k, nil
		}
	}
	return "", validate.Invalid(ParamKind, validate.ReasonNotAllowed,
		fmt.Sprintf("Unknown calculation type: '%s'", s))
}
