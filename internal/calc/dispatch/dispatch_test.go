package dispatch

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Osdag/internal/calc/loads"
	"Osdag/internal/calc/material"
	"Osdag/internal/metrics"
	"Osdag/internal/validate"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("  Moment_Capacity ")
	require.NoError(t, err)
	assert.Equal(t, MomentCapacity, k)

	_, err = ParseKind("")
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please select a calculation type", verr.Message)

	_, err = ParseKind("torsion")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Unknown calculation type: 'torsion'", verr.Message)
}

func TestEvaluate_EveryKind(t *testing.T) {
	params := map[Kind]Params{
		FactoredLoad:       {"dead_load": "100", "live_load": "50"},
		SafetyFactor:       {"applied_stress": "200", "allowable_stress": "150"},
		Utilization:        {"applied_load": "75", "section_capacity": "100"},
		MomentCapacity:     {"yield_strength": "250", "plastic_modulus": "500000"},
		Deflection:         {"actual_deflection": "10", "span_length": "6000"},
		ShearCapacity:      {"yield_strength": "250", "shear_area": "1000"},
		MaterialProperties: {"steel_grade": "Fe410"},
		CompleteAnalysis: {"dead_load": "100", "live_load": "50", "applied_stress": "100",
			"allowable_stress": "165", "section_capacity": "300"},
	}
	want := map[Kind]string{
		FactoredLoad:       "COMPUTED",
		SafetyFactor:       "UNSAFE",
		Utilization:        "ADEQUATE",
		MomentCapacity:     "COMPUTED",
		Deflection:         "WELL WITHIN LIMITS",
		ShearCapacity:      "COMPUTED",
		MaterialProperties: "COMPUTED",
		CompleteAnalysis:   "ACCEPTABLE",
	}
	require.Len(t, params, len(Kinds()))
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			out, err := Evaluate(k, params[k])
			require.NoError(t, err)
			assert.Equal(t, k, out.Kind)
			assert.Equal(t, want[k], out.Result.Classification())
		})
	}
}

func TestEvaluate_Results(t *testing.T) {
	out, err := EvaluateNamed("factored_load", Params{"dead_load": 100.0, "live_load": 50.0, "wind_load": 30.0, "combination_type": "wind"})
	require.NoError(t, err)
	assert.Equal(t, 216.0, out.Result.(loads.Result).FactoredLoad)

	out, err = EvaluateNamed("material_properties", Params{"steel_grade": "Fe410"})
	require.NoError(t, err)
	m := out.Result.(material.Result)
	assert.Equal(t, 250.0, m.YieldStrength)
	assert.Equal(t, 410.0, m.UltimateStrength)
}

func TestEvaluate_UnknownKind(t *testing.T) {
	_, err := Evaluate(Kind("torsion"), Params{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, validate.ErrInvalidInput)
}

func newRouter() (*Handler, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return &Handler{Metrics: metrics.New(reg)}, reg
}

type envelope struct {
	Success         bool            `json:"success"`
	CalculationType string          `json:"calculation_type"`
	Result          json.RawMessage `json:"result"`
	Error           string          `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHandler_CalculateForm(t *testing.T) {
	h, _ := newRouter()
	form := url.Values{
		"calculation_type": {"utilization"},
		"applied_load":     {"75"},
		"section_capacity": {"100"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "utilization", env.CalculationType)

	var res map[string]any
	require.NoError(t, json.Unmarshal(env.Result, &res))
	assert.Equal(t, 0.75, res["utilization_ratio"])
	assert.Equal(t, "ADEQUATE", res["status"])
	assert.Equal(t, 25.0, res["reserve_capacity"])
}

func TestHandler_CalculateMultipart(t *testing.T) {
	h, _ := newRouter()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("calculation_type", "shear_capacity"))
	require.NoError(t, mw.WriteField("yield_strength", "250"))
	require.NoError(t, mw.WriteField("shear_area", "1000"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "shear_capacity", env.CalculationType)
	var res map[string]any
	require.NoError(t, json.Unmarshal(env.Result, &res))
	assert.Equal(t, 131.22, res["shear_capacity_kn"])
}

func TestHandler_CalculateOverflow(t *testing.T) {
	h, _ := newRouter()
	form := url.Values{
		"calculation_type": {"utilization"},
		"applied_load":     {"1e307"},
		"section_capacity": {"1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Calculation error", env.Error)
}

func TestHandler_CalculateJSON(t *testing.T) {
	h, _ := newRouter()
	body := `{"calculation_type":"moment_capacity","yield_strength":250,"plastic_modulus":500000}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Result, &res))
	assert.Equal(t, 113.64, res["moment_capacity_knm"])
}

func TestHandler_CalculateErrors(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		msg  string
	}{
		{"no kind", url.Values{}, "Please select a calculation type"},
		{"unknown kind", url.Values{"calculation_type": {"torsion"}}, "Unknown calculation type: 'torsion'"},
		{"invalid input", url.Values{"calculation_type": {"safety_factor"}, "applied_stress": {"0"}, "allowable_stress": {"5"}},
			"Applied Stress cannot be zero"},
		{"not numeric", url.Values{"calculation_type": {"shear_capacity"}, "yield_strength": {"abc"}, "shear_area": {"5"}},
			"Yield Strength must be a numeric value, got 'abc'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newRouter()
			req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			h.Calculate(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.msg, env.Error)
		})
	}
}

func TestHandler_BadJSON(t *testing.T) {
	h, _ := newRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{"calculation_type":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CompleteAnalysis(t *testing.T) {
	h, _ := newRouter()
	form := url.Values{
		"dead_load": {"100"}, "live_load": {"50"},
		"applied_stress": {"200"}, "allowable_stress": {"150"},
		"section_capacity": {"300"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/complete-analysis", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.CompleteAnalysis(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Result, &res))
	assert.Equal(t, "REVIEW REQUIRED", res["overall_status"])
	assert.Equal(t, false, res["is_acceptable"])
}

func TestHandler_Listings(t *testing.T) {
	h, _ := newRouter()
	tests := []struct {
		name    string
		handler http.HandlerFunc
		key     string
		count   int
	}{
		{"grades", h.SteelGrades, "steel_grades", 8},
		{"combinations", h.LoadCombinations, "load_combinations", 3},
		{"deflection", h.DeflectionLimits, "deflection_limits", 4},
		{"kinds", h.CalculationTypes, "calculation_types", 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			var list []json.RawMessage
			require.NoError(t, json.Unmarshal(body[tt.key], &list))
			assert.Len(t, list, tt.count)
		})
	}
}
