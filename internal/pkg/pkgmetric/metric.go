package pkgmetric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kayak_itinerary_searches_total",
		Help: "Itinerary searches, labelled by sort order.",
	}, []string{"sort"})

	SearchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kayak_itinerary_cache_hits_total",
		Help: "Itinerary searches answered from cache.",
	})

	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kayak_uploads_total",
		Help: "Ingestion batches, labelled by kind and result.",
	}, []string{"kind", "result"})
)

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
