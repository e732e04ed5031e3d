package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careergps_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careergps_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careergps_recommendations_total",
			Help: "Top-ranked career per recommendation call",
		},
		[]string{"career"},
	)

	SkillMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careergps_skill_matches_total",
			Help: "Skill match calls by career and readiness level",
		},
		[]string{"career", "level"},
	)

	ResumesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careergps_resumes_processed_total",
			Help: "Uploaded resumes by content type and outcome",
		},
		[]string{"mime", "outcome"},
	)

	VisitorHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "careergps_visitor_hits_total",
			Help: "Visitor counter increments served by this process",
		},
	)

	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "careergps_ws_clients",
			Help: "Connected visitor-count websocket clients",
		},
	)
)
