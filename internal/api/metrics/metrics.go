// Package metrics defines and registers all custom Prometheus metrics for
// the platform API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// init; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quantum"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success", "duplicate_email", or "invalid"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, labelled by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "cancelled", or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token checks by the auth middleware.
// Label:
//   - result: "ok", "invalid", or "revoked"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, labelled by result.",
	},
	[]string{"result"},
)

// AuditEntriesTotal counts audit entries successfully persisted.
// Label:
//   - action: audit action tag (e.g. "login", "user_deleted")
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit entries written, by action.",
	},
	[]string{"action"},
)

// AuditWriteFailuresTotal counts audit entries that were lost.
// Label:
//   - reason: "buffer_full" or "write_error"
var AuditWriteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit entries dropped or failed, by reason.",
	},
	[]string{"reason"},
)
