// Package metrics defines and registers all custom Prometheus metrics for
// the LifeBit platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package load; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lifebit"

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

// RefreshesTotal counts session-refresh attempts. A client bootstrapping
// with an expired cookie lands in "expired" — that is the normal logged-out
// path, not an error.
var RefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_refreshes_total",
		Help:      "Total number of refresh attempts, by result (success/expired).",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by the RBAC middleware.
// Label:
//   - route: the registered route path
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by role-based access control.",
	},
	[]string{"route"},
)

// ── Email-change metrics ──────────────────────────────────────────────────────

// EmailChangeRequestsTotal counts issued email-change tickets.
var EmailChangeRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_change_requests_total",
		Help:      "Total number of email-change tickets issued.",
	},
)

// EmailChangeConfirmsTotal counts confirmation attempts from the emailed link.
// Label:
//   - result: "success", "invalid_token" or "email_in_use"
var EmailChangeConfirmsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_change_confirms_total",
		Help:      "Total number of email-change confirmation attempts, by result.",
	},
	[]string{"result"},
)

// ── Mail metrics ──────────────────────────────────────────────────────────────

// MailsSentTotal counts background mail deliveries.
// Label:
//   - result: "success" or "failure"
var MailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_sent_total",
		Help:      "Total number of outbound mails processed by the dispatcher.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks the current number of mails waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of mails pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
