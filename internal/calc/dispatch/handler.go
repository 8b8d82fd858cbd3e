package dispatch

import (
	"mime"
	"net/http"
	"time"

	"Osdag/internal/calc/standard"
	"Osdag/internal/metrics"
	"Osdag/internal/respond"
)

type Handler struct {
	Metrics *metrics.Metrics
}

// Calculate serves POST /api/calculate. The body is either a form or a JSON
// object; calculation_type selects the calculator.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	kind, _ := p[ParamKind].(string)
	k, err := ParseKind(kind)
	if err != nil {
		respond.Error(w, err)
		return
	}
	h.serve(w, k, p)
}

// CompleteAnalysis serves POST /api/complete-analysis.
func (h *Handler) CompleteAnalysis(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	h.serve(w, CompleteAnalysis, p)
}

func (h *Handler) serve(w http.ResponseWriter, k Kind, p Params) {
	start := time.Now()
	out, err := Evaluate(k, p)
	status := ""
	if err == nil {
		status = out.Result.Classification()
	}
	h.Metrics.Observe(string(k), metrics.Outcome(status, err), time.Since(start))
	if err != nil {
		respond.Error(w, err)
		return
	}
	respond.Result(w, string(out.Kind), out.Result)
}

func (h *Handler) SteelGrades(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"success": true, "steel_grades": standard.Grades()})
}

func (h *Handler) LoadCombinations(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"success": true, "load_combinations": standard.Combinations()})
}

func (h *Handler) DeflectionLimits(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"success": true, "deflection_limits": standard.DeflectionLimits()})
}

func (h *Handler) CalculationTypes(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"success": true, "calculation_types": Kinds()})
}

const maxFormMemory = 1 << 20

func readParams(r *http.Request) (Params, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		p := Params{}
		if err := respond.Decode(r, &p); err != nil {
			return nil, err
		}
		return p, nil
	}
	if ct == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}
	p := make(Params, len(r.PostForm))
	for key := range r.PostForm {
		p[key] = r.PostForm.Get(key)
	}
	return p, nil
}
