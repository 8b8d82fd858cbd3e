package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Osdag/internal/validate"
)

func TestOutcome(t *testing.T) {
	_, verr := validate.Positive(0, "Span Length")
	assert.Equal(t, "SAFE", Outcome("SAFE", nil))
	assert.Equal(t, OutcomeInvalidInput, Outcome("", verr))
	assert.Equal(t, OutcomeError, Outcome("", errors.New("boom")))
}

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.Observe("utilization", "ADEQUATE", time.Millisecond)
	m.Observe("utilization", "ADEQUATE", time.Millisecond)
	m.Observe("utilization", OutcomeInvalidInput, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("utilization", "ADEQUATE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("utilization", OutcomeInvalidInput)))
}

func TestObserve_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe("deflection", "WITHIN LIMITS", time.Second) })
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg).Observe("shear_capacity", "COMPUTED", time.Microsecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `osdag_calculations_total{kind="shear_capacity",outcome="COMPUTED"} 1`)
}
