// file: internal/metrics/metrics_test.go
// version: 1.0.0
// guid: 5c9e3b7d-1a4f-4e8c-d0b2-6f3a9e5c1d8b

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {
	// Every entry point (CLI commands and the server) registers on startup;
	// repeated calls must not panic on duplicate registration.
	Register()
	Register()
}

func TestCountersRecordAfterRegister(t *testing.T) {
	Register()

	before := testutil.ToFloat64(queriesTotal.WithLabelValues("ok"))
	IncQueryOK()
	assert.Equal(t, before+1, testutil.ToFloat64(queriesTotal.WithLabelValues("ok")))

	SetPlaylistCount(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(playlistsGauge))
}
