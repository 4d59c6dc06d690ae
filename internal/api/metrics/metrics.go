// Package metrics defines and registers all custom Prometheus metrics for the
// Loop Services API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package load; expose them by mounting promhttp (the router does this on
// /metrics).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "loop"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts created accounts by role.
// Label:
//   - role: the role chosen at signup (e.g. "CLIENT", "APPLICANT")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ── Applicant metrics ─────────────────────────────────────────────────────────

// ApplicantUploadsTotal counts stored applicant artifacts.
// Label:
//   - kind: "resume" or "videoCv"
var ApplicantUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applicant_uploads_total",
		Help:      "Total number of applicant file uploads stored, by kind.",
	},
	[]string{"kind"},
)

// ApplicantUploadBytes observes the size of stored applicant artifacts.
var ApplicantUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "applicant_upload_bytes",
		Help:      "Size distribution of stored applicant uploads.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 8), // 16 KiB … 4 GiB
	},
)

// ApplicantReviewsTotal counts admin review decisions.
// Label:
//   - status: the decision applied (e.g. "APPROVED", "REJECTED")
var ApplicantReviewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applicant_reviews_total",
		Help:      "Total number of admin review decisions, by resulting status.",
	},
	[]string{"status"},
)

// ApplicantSubmissionsTotal counts applications moved into the review queue.
var ApplicantSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applicant_submissions_total",
		Help:      "Total number of applications submitted for review.",
	},
)
