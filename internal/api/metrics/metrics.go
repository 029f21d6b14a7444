// Package metrics defines and registers all custom Prometheus metrics for the
// campus portal API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Browse metrics ────────────────────────────────────────────────────────────

// BrowseQueriesTotal counts executed browse queries.
// Label:
//   - sort: the sort key applied ("date", "downloads", "name")
var BrowseQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "browse_queries_total",
		Help:      "Total number of file browse queries, by sort key.",
	},
	[]string{"sort"},
)

// BrowseDuration measures how long a browse query takes end-to-end.
var BrowseDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "browse_duration_seconds",
		Help:      "Duration of browse queries from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// FilesUploadedTotal counts successfully ingested files.
// Label:
//   - resource_type: the academic category of the file
var FilesUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_uploaded_total",
		Help:      "Total number of files ingested, by resource type.",
	},
	[]string{"resource_type"},
)

// FilesSkippedTotal counts descriptors dropped by the upload collaborator.
// Label:
//   - reason: "content_type" or "size"
var FilesSkippedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_skipped_total",
		Help:      "Total number of upload descriptors dropped before ingestion.",
	},
	[]string{"reason"},
)

// ── Download metrics ──────────────────────────────────────────────────────────

// DownloadsRecordedTotal counts applied download-count increments.
var DownloadsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "downloads_recorded_total",
		Help:      "Total number of download counter increments applied.",
	},
)

// DownloadQueueDepth tracks commands waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var DownloadQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "download_queue_depth",
		Help:      "Current number of download commands pending per dispatcher worker.",
	},
	[]string{"worker_id"},
)

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

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "invalid_domain", or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)
