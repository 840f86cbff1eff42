package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hearing_hub_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hearing_hub_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	ConferenceCacheLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hearing_hub_conference_cache_loads_total",
			Help: "Conference cache lookups by result",
		},
		[]string{"result"}, // "hit", "loaded", "failed"
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hearing_hub_notifications_sent_total",
			Help: "Notifications delivered to hub connections",
		},
		[]string{"type"},
	)

	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hearing_hub_notification_failures_total",
			Help: "Notifications a connection failed to accept",
		},
		[]string{"type"},
	)

	HubConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hearing_hub_connections",
			Help: "Currently registered hub connections",
		},
	)

	ConsultationInvitations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hearing_hub_consultation_invitations_total",
			Help: "Consultation invitations by final state",
		},
		[]string{"state"},
	)

	InstantMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hearing_hub_instant_messages_total",
			Help: "Instant messages by outcome",
		},
		[]string{"outcome"}, // "sent", "denied"
	)

	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hearing_hub_upstream_latency_seconds",
			Help:    "Latency of calls to the conference, user and video APIs",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"service", "operation"},
	)

	ProcessCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hearing_hub_process_cpu_percent",
			Help: "CPU usage of the hub process sampled by the heartbeat",
		},
	)

	ProcessRSSBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hearing_hub_process_rss_bytes",
			Help: "Resident memory of the hub process sampled by the heartbeat",
		},
	)

	WorkerRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hearing_hub_worker_restarts_total",
			Help: "Supervised worker restarts by cause",
		},
		[]string{"worker", "cause"},
	)

	WorkersRunning = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hearing_hub_workers_running",
			Help: "1 while a supervised worker is running",
		},
		[]string{"worker"},
	)
)
