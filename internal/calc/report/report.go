package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"Osdag/internal/calc/dispatch"
)

type Input struct {
	Project         string          `json:"project"`
	Author          string          `json:"author"`
	Title           string          `json:"title"`
	Notes           string          `json:"notes"`
	CalculationType string          `json:"calculation_type"`
	Params          dispatch.Params `json:"params"`
}

// Document is an evaluated calculation ready to be rendered.
type Document struct {
	Input
	Outcome dispatch.Outcome
	Date    time.Time
}

// Prepare evaluates the calculation so input errors surface before any PDF
// bytes are written.
func Prepare(in Input, now time.Time) (Document, error) {
	if in.Title == "" {
		in.Title = "Structural Design Check"
	}
	out, err := dispatch.EvaluateNamed(in.CalculationType, in.Params)
	if err != nil {
		return Document{}, err
	}
	return Document{Input: in, Outcome: out, Date: now}, nil
}

func (d Document) Render(w io.Writer) error {
	fields, err := flatten(d.Outcome.Result)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, d.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", d.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", d.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", d.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Calculation: %s", d.Outcome.Kind))
	pdf.Ln(10)

	section(pdf, "Inputs", paramRows(d.Params))
	section(pdf, "Results", fields)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", d.Outcome.Result.Classification()))
	pdf.Ln(10)
	if d.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, d.Notes, "", "L", false)
	}
	return pdf.Output(w)
}

type row struct{ key, value string }

func section(pdf *gofpdf.Fpdf, title string, rows []row) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(80, 6, r.key, "1", 0, "L", false, 0, "")
		pdf.CellFormat(100, 6, r.value, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func paramRows(p dispatch.Params) []row {
	rows := make([]row, 0, len(p))
	for k, v := range p {
		if k == dispatch.ParamKind {
			continue
		}
		rows = append(rows, row{key: k, value: fmt.Sprint(v)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].key < rows[j].key })
	return rows
}

// flatten turns a result into sorted key/value rows, joining nested keys
// with dots.
func flatten(v any) ([]row, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("report: marshal result: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("report: unmarshal result: %w", err)
	}
	var rows []row
	walk("", m, &rows)
	sort.Slice(rows, func(i, j int) bool { return rows[i].key < rows[j].key })
	return rows, nil
}

func walk(prefix string, m map[string]any, rows *[]row) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			walk(key, t, rows)
		case float64:
			*rows = append(*rows, row{key: key, value: strconv.FormatFloat(t, 'f', -1, 64)})
		default:
			*rows = append(*rows, row{key: key, value: fmt.Sprint(t)})
		}
	}
}
