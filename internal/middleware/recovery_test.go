package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fittracker/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	panickyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something horrible happened")
	})

	wrapped := PanicRecovery(metricsManager)(panickyHandler)

	req, err := http.NewRequest("GET", "/fitness/state", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	require.NotPanics(t, func() {
		wrapped.ServeHTTP(rr, req)
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}
