package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/baditaflorin/go_mt_eval/internal/core/domain"
)

var (
	PairsScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mteval_pairs_scored_total",
		Help: "Total number of reference/candidate pairs scored",
	}, []string{"language"})

	ScoreValue = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mteval_score_value",
		Help:    "Distribution of metric scores",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	}, []string{"metric"})

	PairDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mteval_pair_duration_seconds",
		Help:    "Time spent scoring one pair",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	Evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mteval_evaluations_total",
		Help: "Total number of evaluation runs by outcome",
	}, []string{"outcome"})

	Wins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mteval_wins_total",
		Help: "Comparisons won per model",
	}, []string{"model"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mteval_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mteval_http_request_duration_seconds",
		Help:    "HTTP request duration",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"path"})
)

// ObservePair records one scored pair.
func ObservePair(language string, scores domain.ModelScores, elapsed time.Duration) {
	PairsScored.WithLabelValues(language).Inc()
	PairDuration.Observe(elapsed.Seconds())
	for kind, s := range scores {
		ScoreValue.WithLabelValues(string(kind)).Observe(s.Value)
	}
}

// ObserveEvaluation records the outcome of an evaluation run.
func ObserveEvaluation(ranking []domain.WinRecord, err error) {
	if err != nil {
		Evaluations.WithLabelValues("error").Inc()
		return
	}
	Evaluations.WithLabelValues("ok").Inc()
	for _, r := range ranking {
		Wins.WithLabelValues(r.Model).Add(float64(r.TotalWins))
	}
}

// ObserveRequest records a served HTTP request.
func ObserveRequest(path string, code int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
	HTTPDuration.WithLabelValues(path).Observe(elapsed.Seconds())
}
