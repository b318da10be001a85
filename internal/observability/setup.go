package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

var (
	// Global logger instance, a no-op until Init replaces it
	Logger = zap.NewNop()

	// Metrics
	moderationActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_actions_total",
			Help: "Total number of moderation actions performed",
		},
		[]string{"action"},
	)

	automodStrikesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "automod_strikes_total",
			Help: "Total number of strikes recorded by automated moderation",
		},
	)

	classificationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classification_duration_seconds",
			Help:    "Time spent classifying message content",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)
)

func Init(ctx context.Context, metricsAddr string) error {
	var err error
	Logger, err = zap.NewProduction()
	if err != nil {
		return err
	}

	prometheus.MustRegister(moderationActionsTotal)
	prometheus.MustRegister(automodStrikesTotal)
	prometheus.MustRegister(classificationDuration)

	tp := trace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			Logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	Logger.Info("observability initialized", zap.String("metrics_addr", metricsAddr))

	return nil
}

// RecordModerationAction records one performed moderation action by tag.
func RecordModerationAction(action string) {
	moderationActionsTotal.WithLabelValues(action).Inc()
}

// RecordStrike records one automod strike increment.
func RecordStrike() {
	automodStrikesTotal.Inc()
}

// StartClassification returns a function to record classification duration.
func StartClassification(backend string) func() {
	timer := prometheus.NewTimer(classificationDuration.WithLabelValues(backend))
	return func() {
		timer.ObserveDuration()
	}
}
