// file: internal/metrics/metrics.go
// version: 1.0.0
// guid: 9d2c7b4e-1f8a-4c3d-b6e9-0a5f2e8d7c1b

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "playlist_companion",
		Name:      "store_queries_total",
		Help:      "Total number of statements executed by the store gateway",
	}, []string{"outcome"})
	watchTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "playlist_companion",
		Name:      "watch_transitions_total",
		Help:      "Total number of watched/unwatched transitions applied",
	}, []string{"transition"})
	backupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "playlist_companion",
		Name:      "backups_total",
		Help:      "Total number of database backup and restore operations",
	}, []string{"operation", "outcome"})
	playlistsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "playlist_companion",
		Name:      "playlists_total",
		Help:      "Current number of playlists in the library",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(queriesTotal, watchTransitions, backupsTotal, playlistsGauge)
	})
}

func IncQueryOK()     { queriesTotal.WithLabelValues("ok").Inc() }
func IncQueryFailed() { queriesTotal.WithLabelValues("failed").Inc() }

func IncWatched()   { watchTransitions.WithLabelValues("watched").Inc() }
func IncUnwatched() { watchTransitions.WithLabelValues("unwatched").Inc() }

func IncBackup(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	backupsTotal.WithLabelValues(operation, outcome).Inc()
}

// SetPlaylistCount updates the playlists gauge after a list/refresh.
func SetPlaylistCount(n int) { playlistsGauge.Set(float64(n)) }
