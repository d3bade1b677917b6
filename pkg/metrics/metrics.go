package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"service", "method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)

	LikeTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "like_toggles_total",
			Help: "Total number of like toggles by outcome",
		},
		[]string{"result"},
	)

	LikeToggleConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "like_toggle_conflicts_total",
			Help: "Toggles whose insert lost a race on the (user, post) unique constraint",
		},
	)

	SoftDeletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soft_deletes_total",
			Help: "Total number of soft-deleted rows by resource",
		},
		[]string{"resource"},
	)

	NotificationsDeliveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_delivered_total",
			Help: "Notifications stored in user inboxes by task type",
		},
		[]string{"type"},
	)
)

const (
	ToggleCreated = "created"
	ToggleDeleted = "deleted"
)
