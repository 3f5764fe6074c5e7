package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ListingRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "botscope_listing_requests_total",
		Help: "Listing requests by active tab.",
	}, []string{"tab"})

	ListingEmptyTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "botscope_listing_empty_total",
		Help: "Listing requests that matched no entries.",
	})

	ListingCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "botscope_listing_cache_total",
		Help: "Listing cache lookups.",
	}, []string{"result"}) // hit, miss, error

	ReviewSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "botscope_review_submissions_total",
		Help: "Review submissions by outcome.",
	}, []string{"outcome"}) // accepted, invalid, failed

	CatalogEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "botscope_catalog_entries",
		Help: "Entries in the loaded catalog.",
	})
)
