package batch

import (
	"fmt"

	"Osdag/internal/calc/dispatch"
)

type Item struct {
	CalculationType string          `json:"calculation_type"`
	Params          dispatch.Params `json:"params"`
}

type Input struct {
	Items []Item `json:"items"`
}

type Result struct {
	Count   int                `json:"count"`
	Results []dispatch.Outcome `json:"results"`
}

// Calculate evaluates items in order and stops at the first failure.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]dispatch.Outcome, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := dispatch.EvaluateNamed(item.CalculationType, item.Params)
		if err != nil {
			return Result{}, &ItemError{Index: i, Err: err}
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}

// ItemError locates the failing item of a batch.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.Err) }

func (e *ItemError) Unwrap() error { return e.Err }
