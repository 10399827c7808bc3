// Package metrics defines the custom Prometheus metrics of the zoo API. It is
// the single source of truth for metric names, labels and help strings.
//
// Metrics register with the default registry on package init (promauto); HTTP
// request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "zoo"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (bad credentials) or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests stopped by the auth middleware.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// AccountsRegisteredTotal counts accounts created by administrators.
// Label:
//   - role: "veterinarian" or "employee"
var AccountsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of staff accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Click metrics ─────────────────────────────────────────────────────────────

// ClickQueueDepth tracks clicks waiting in each dispatcher worker channel.
var ClickQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "click_queue_depth",
		Help:      "Current number of clicks pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ClicksDroppedTotal counts clicks discarded because a worker queue was full.
var ClicksDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clicks_dropped_total",
		Help:      "Total number of animal clicks dropped because the queue was full.",
	},
)
