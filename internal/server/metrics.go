package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeCompleted    = "completed"
	outcomeDisconnected = "disconnected"
	outcomeShutdown     = "shutdown"
)

type metrics struct {
	pageViews    *prometheus.CounterVec
	faqToggles   *prometheus.CounterVec
	bootSessions *prometheus.CounterVec
	bootDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		pageViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthesis_page_views_total",
				Help: "Rendered landing pages by skin.",
			},
			[]string{"skin"},
		),
		faqToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthesis_faq_toggles_total",
				Help: "FAQ accordion toggles by skin.",
			},
			[]string{"skin"},
		),
		bootSessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthesis_boot_sessions_total",
				Help: "Finished boot sequence sessions by outcome.",
			},
			[]string{"outcome"},
		),
		bootDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "synthesis_boot_session_seconds",
				Help:    "Wall time of boot sequence sessions.",
				Buckets: []float64{0.5, 1, 2, 4, 6, 8, 12, 20, 40},
			},
		),
	}
	reg.MustRegister(m.pageViews, m.faqToggles, m.bootSessions, m.bootDuration)
	return m
}

func (s *Server) metricsHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}
