// Package metrics defines and registers all custom Prometheus metrics for
// the clinic API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// echoprometheus handler on /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

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

// SessionsRevokedTotal counts tokens denylisted on logout.
var SessionsRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of session tokens revoked by logout.",
	},
)

// AppointmentsCreatedTotal counts newly booked appointments.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments created.",
	},
)

// VisitsCreatedTotal counts recorded treatment visits.
var VisitsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visits_created_total",
		Help:      "Total number of treatment visits recorded.",
	},
)

// PaymentsRecordedTotal counts received payments.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of patient payments recorded.",
	},
)

// ImagesUploadedTotal counts stored medical images.
// Label:
//   - image_type: the uploader-supplied category (e.g. "xray", "photo")
var ImagesUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_uploaded_total",
		Help:      "Total number of medical images uploaded, by type.",
	},
	[]string{"image_type"},
)

// ImageUploadBytes observes the size of uploaded image files.
var ImageUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_upload_bytes",
		Help:      "Size distribution of uploaded medical images.",
		Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 8), // 64KiB .. 1GiB
	},
)
