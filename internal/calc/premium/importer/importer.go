package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"Osdag/internal/calc/dispatch"
	"Osdag/internal/validate"
)

var (
	ErrEmptySheet    = errors.New("empty sheet")
	ErrMissingColumn = fmt.Errorf("header has no %s column", dispatch.ParamKind)
)

type Row struct {
	Row int `json:"row"`
	dispatch.Outcome
}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type Result struct {
	Count   int        `json:"count"`
	Results []Row      `json:"results"`
	Errors  []RowError `json:"errors,omitempty"`
}

// Parse evaluates every data row of the first sheet. Row 1 names the input
// fields; rows that fail are collected in Errors with their sheet row number.
func Parse(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Result{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return Result{}, ErrEmptySheet
	}

	header := make([]string, len(rows[0]))
	kindCol := -1
	for i, cell := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(cell))
		if header[i] == dispatch.ParamKind {
			kindCol = i
		}
	}
	if kindCol < 0 {
		return Result{}, ErrMissingColumn
	}

	out := Result{Results: []Row{}}
	for i := 1; i < len(rows); i++ {
		p := rowParams(header, rows[i])
		if len(p) == 0 {
			continue
		}
		kind, _ := p[dispatch.ParamKind].(string)
		res, err := dispatch.EvaluateNamed(kind, p)
		if err != nil {
			out.Errors = append(out.Errors, RowError{Row: i + 1, Error: rowMessage(err)})
			continue
		}
		out.Results = append(out.Results, Row{Row: i + 1, Outcome: res})
	}
	out.Count = len(out.Results)
	return out, nil
}

func rowParams(header, row []string) dispatch.Params {
	p := dispatch.Params{}
	for i, cell := range row {
		if i >= len(header) || header[i] == "" {
			continue
		}
		if cell = strings.TrimSpace(cell); cell != "" {
			p[header[i]] = cell
		}
	}
	return p
}

func rowMessage(err error) string {
	var verr *validate.Error
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "Calculation error"
}
