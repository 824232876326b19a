package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"red-envelope-sim/internal/model"
)

func TestObserveRound(t *testing.T) {
	m := NewMetrics("")

	m.ObserveRound(model.ModeSlow, model.RoundRecord{User: model.UserOutcome{Success: false}})
	m.ObserveRound(model.ModeSlow, model.RoundRecord{User: model.UserOutcome{
		Success: true, Amount: decimal.RequireFromString("12.5"), IsBestLuck: true,
	}})
	m.ObserveRound(model.ModeFast, model.RoundRecord{User: model.UserOutcome{
		Success: true, Amount: decimal.RequireFromString("2.25"),
	}})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RoundsSimulated.WithLabelValues("slow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RoundsSimulated.WithLabelValues("fast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GrabOutcomes.WithLabelValues("slow", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GrabOutcomes.WithLabelValues("slow", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BestLuckRounds.WithLabelValues("slow")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BestLuckRounds.WithLabelValues("fast")))
	assert.InDelta(t, 12.5, testutil.ToFloat64(m.AmountReceived.WithLabelValues("slow")), 1e-9)
}

func TestObserveSimulation(t *testing.T) {
	m := NewMetrics("test")
	m.ObserveSimulation(model.ModeNormal, 5*time.Millisecond, nil)
	m.ObserveSimulation(model.ModeNormal, 0, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("normal", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("normal", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SimulationDuration))
}

func TestSeparateRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	a := NewMetrics("")
	b := NewMetrics("")
	a.ObserveRound(model.ModeFast, model.RoundRecord{})
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RoundsSimulated.WithLabelValues("fast")))
}

func TestHandler(t *testing.T) {
	m := NewMetrics("")
	m.ObserveRound(model.ModeFast, model.RoundRecord{})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "red_envelope_sim_rounds_simulated_total")
}
