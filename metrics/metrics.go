package metrics

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"net/http"
	"time"
)

var (
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "grader_runs_total", Help: "Grading runs per ticker"},
		[]string{"ticker"},
	)
	ComparisonsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "grader_comparisons_total", Help: "Comparisons graded per significance tier"},
		[]string{"significance"},
	)
)

func init() {
	prometheus.MustRegister(RunsTotal, ComparisonsTotal)
}

func RecordRun(ticker string) {
	RunsTotal.WithLabelValues(ticker).Inc()
}

func RecordComparison(significance analytics.Significance) {
	ComparisonsTotal.WithLabelValues(significance.ShortLabel()).Inc()
}

// Serve exposes /metrics on addr until Shutdown is called on the returned server.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			helpers.Logger.Errorln("metrics server: " + err.Error())
		}
	}()
	return srv
}

func Shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
