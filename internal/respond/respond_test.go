package respond

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Osdag/internal/validate"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestError_InvalidInput(t *testing.T) {
	rec := httptest.NewRecorder()
	_, err := validate.Positive(0, "Section Capacity")
	Error(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Section Capacity cannot be zero", env.Error)
}

func TestError_InternalIsOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("index out of range at calc.go:42"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Calculation error", env.Error)
	assert.NotContains(t, rec.Body.String(), "calc.go")
}

func TestResult(t *testing.T) {
	rec := httptest.NewRecorder()
	Result(rec, "utilization", map[string]float64{"utilization_ratio": 0.75})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "utilization", env.CalculationType)
}

func TestResult_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	Result(rec, "utilization", map[string]float64{"utilization_percent": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Calculation error", env.Error)
}
