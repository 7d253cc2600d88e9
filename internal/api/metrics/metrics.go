// Package metrics defines and registers all custom Prometheus metrics for
// the SER API. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ser"

// LoginsTotal counts login attempts that reached the credential check.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ContentCreatedTotal counts successfully created content resources.
// Label:
//   - type: "product", "event", "post" or "gallery_item"
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of content resources created via the admin API.",
	},
	[]string{"type"},
)

// ListCacheTotal counts list-cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var ListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_total",
		Help:      "Total number of public list cache lookups, labelled by result.",
	},
	[]string{"result"},
)
