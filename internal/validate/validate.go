package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"Osdag/internal/calc/standard"
)

// ErrInvalidInput matches every *Error via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

type Reason string

const (
	ReasonMissing    Reason = "missing"
	ReasonNotNumeric Reason = "not_numeric"
	ReasonNegative   Reason = "negative"
	ReasonZero       Reason = "zero"
	ReasonNotAllowed Reason = "not_allowed"
)

// Error reports the first rule a parameter violated.
type Error struct {
	Param   string
	Reason  Reason
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == ErrInvalidInput }

func newError(param string, reason Reason, format string, args ...any) *Error {
	return &Error{Param: param, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Invalid builds an input error for checks that live outside this package.
func Invalid(param string, reason Reason, message string) *Error {
	return &Error{Param: param, Reason: reason, Message: message}
}

// Present reports whether v carries a value. nil and blank strings do not.
func Present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case json.Number:
		return strings.TrimSpace(string(t)) != ""
	}
	return true
}

// Numeric parses v as a finite real number.
func Numeric(v any, param string) (float64, error) {
	if !Present(v) {
		return 0, newError(param, ReasonMissing, "%s is required", param)
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		if err != nil {
			return 0, notNumeric(param, v)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, notNumeric(param, v)
		}
		f = parsed
	default:
		return 0, notNumeric(param, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, notNumeric(param, v)
	}
	return f, nil
}

func notNumeric(param string, v any) *Error {
	return newError(param, ReasonNotNumeric, "%s must be a numeric value, got '%v'", param, v)
}

// NonNegative accepts zero.
func NonNegative(v any, param string) (float64, error) {
	f, err := Numeric(v, param)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, newError(param, ReasonNegative, "%s cannot be negative, got %s", param, format(f))
	}
	return f, nil
}

func Positive(v any, param string) (float64, error) {
	f, err := NonNegative(v, param)
	if err != nil {
		return 0, err
	}
	if f == 0 {
		return 0, newError(param, ReasonZero, "%s cannot be zero", param)
	}
	return f, nil
}

// MaxDeflectionRatio bounds the span divisor so it always fits an int.
const MaxDeflectionRatio = math.MaxInt32

// DeflectionRatio validates a span divisor and truncates it to an integer.
func DeflectionRatio(v any, param string) (int, error) {
	f, err := Positive(v, param)
	if err != nil {
		return 0, err
	}
	if f < 1 {
		return 0, newError(param, ReasonZero, "%s must be at least 1, got %s", param, format(f))
	}
	if f > MaxDeflectionRatio {
		return 0, newError(param, ReasonNotAllowed, "%s cannot exceed %d, got %s", param, MaxDeflectionRatio, format(f))
	}
	return int(f), nil
}

const (
	paramCombination = "Combination Type"
	paramSteelGrade  = "Steel Grade"
	paramCategory    = "Deflection Category"
)

func CombinationType(v any) (standard.LoadCombination, error) {
	s, ok := v.(string)
	if !ok {
		return standard.LoadCombination{}, newError(paramCombination, ReasonNotAllowed,
			"Combination type must be a string, got %T", v)
	}
	combo, ok := standard.LookupCombination(s)
	if !ok {
		return standard.LoadCombination{}, newError(paramCombination, ReasonNotAllowed,
			"Invalid combination type: '%s'. Must be one of: %s", s, strings.Join(standard.CombinationNames(), ", "))
	}
	return combo, nil
}

func SteelGrade(v any) (standard.SteelGrade, error) {
	s, ok := v.(string)
	if !ok {
		return standard.SteelGrade{}, newError(paramSteelGrade, ReasonNotAllowed,
			"Steel grade must be a string, got %T", v)
	}
	grade, ok := standard.LookupGrade(s)
	if !ok {
		return standard.SteelGrade{}, newError(paramSteelGrade, ReasonNotAllowed,
			"Unknown steel grade: '%s'. Available grades: %s", s, strings.Join(standard.GradeNames(), ", "))
	}
	return grade, nil
}

func DeflectionCategory(v any) (standard.DeflectionLimit, error) {
	s, ok := v.(string)
	if !ok {
		return standard.DeflectionLimit{}, newError(paramCategory, ReasonNotAllowed,
			"Deflection category must be a string, got %T", v)
	}
	limit, ok := standard.LookupDeflectionLimit(s)
	if !ok {
		return standard.DeflectionLimit{}, newError(paramCategory, ReasonNotAllowed,
			"Invalid deflection category: '%s'. Must be one of: %s", s, strings.Join(standard.DeflectionCategories(), ", "))
	}
	return limit, nil
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
