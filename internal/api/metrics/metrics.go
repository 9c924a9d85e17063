// Package metrics defines and registers all custom Prometheus metrics for the
// EstateHub API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "estatehub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the identity
// resolver. The reason label is internal telemetry only; clients always see
// the same generic unauthorized response.
// Label:
//   - reason: "missing_header", "bad_header", "expired", "invalid", "missing_claims"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by internal reason.",
	},
	[]string{"reason"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created listings.
// Label:
//   - type: "house", "apartment", "land", "local", "commercial", "other"
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of listings created, by property type.",
	},
	[]string{"type"},
)

// ── Interaction pipeline metrics ──────────────────────────────────────────────

// InteractionsAcceptedTotal counts interaction events accepted for async
// processing.
// Label:
//   - type: the interaction type reported by the sender (e.g. "visit")
var InteractionsAcceptedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interactions_accepted_total",
		Help:      "Total number of interaction events accepted for processing.",
	},
	[]string{"type"},
)

// InteractionsErrorsTotal counts interaction events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "property_not_found", "insert_failed")
var InteractionsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interactions_errors_total",
		Help:      "Total number of interaction events that failed processing.",
	},
	[]string{"reason"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// RefDataCacheTotal counts reference-data cache lookups.
// Label:
//   - result: "hit" or "miss"
var RefDataCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refdata_cache_total",
		Help:      "Total number of reference-data cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
