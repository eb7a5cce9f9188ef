package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"exec-dashboard-go/internal/config"
	"exec-dashboard-go/internal/dataset"
	"exec-dashboard-go/internal/kpi"
	"exec-dashboard-go/internal/logger"
	"exec-dashboard-go/internal/metrics"
	"exec-dashboard-go/internal/summary"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "exec-dashboard-go").Info("starting service")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	activities := dataset.NewStore(cfg.Data.CallsPath, cfg.Data.EmailsPath)
	kpis := kpi.NewStore(cfg.Data.KPIPath, cfg.Data.MarketingPath)

	// Warm the caches so a broken deployment is visible at startup. The
	// service still comes up; handlers surface the sticky load error.
	if _, err := activities.Calls(); err != nil {
		log.WithError(err).Error("call data unavailable")
	}
	if _, err := activities.Emails(); err != nil {
		log.WithError(err).Error("email data unavailable")
	}
	if _, err := kpis.Workbook(); err != nil {
		log.WithError(err).Error("kpi workbook unavailable")
	}
	if _, err := kpis.Marketing(); err != nil {
		log.WithError(err).Error("marketing data unavailable")
	}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	mux.HandleFunc("/api/metrics/overview", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "overview")
		calls, err := activities.Calls()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		emails, err := activities.Emails()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		from, to := dateRange(r)
		writeJSON(w, reqLog, metrics.ComputeOverviewMetrics(calls, emails, from, to))
	})

	mux.HandleFunc("/api/metrics/sales", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "sales")
		calls, err := activities.Calls()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		from, to := dateRange(r)
		writeJSON(w, reqLog, metrics.ComputeSalesMetrics(calls, from, to))
	})

	mux.HandleFunc("/api/metrics/emails", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "emails")
		emails, err := activities.Emails()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		from, to := dateRange(r)
		writeJSON(w, reqLog, metrics.ComputeEmailsMetrics(emails, from, to))
	})

	mux.HandleFunc("/api/metrics/support", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "support")
		calls, err := activities.Calls()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		emails, err := activities.Emails()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		from, to := dateRange(r)
		writeJSON(w, reqLog, metrics.ComputeSupportMetrics(calls, emails, from, to))
	})

	mux.HandleFunc("/api/kpi", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "kpi")
		data, err := kpis.Workbook()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		writeJSON(w, reqLog, data)
	})

	mux.HandleFunc("/api/marketing", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "marketing")
		data, err := kpis.Marketing()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		writeJSON(w, reqLog, data)
	})

	// digest for the external insight collaborator; from/to are required
	// here because the digest is meaningless without a window
	mux.HandleFunc("/api/ai/summary", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "ai_summary")
		from, to := dateRange(r)
		if from == "" || to == "" {
			reqLog.Warn("missing from or to")
			http.Error(w, "missing from or to parameters", http.StatusBadRequest)
			return
		}
		calls, err := activities.Calls()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		emails, err := activities.Emails()
		if err != nil {
			failLoad(w, reqLog, err)
			return
		}
		start := time.Now()
		digest := summary.Build(calls, emails, from, to)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("digest built")
		writeJSON(w, reqLog, digest)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func dateRange(r *http.Request) (string, string) {
	q := r.URL.Query()
	return q.Get("from"), q.Get("to")
}

func writeJSON(w http.ResponseWriter, log *logrus.Entry, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithField("error", err.Error()).Error("failed to write response")
	}
}

func failLoad(w http.ResponseWriter, log *logrus.Entry, err error) {
	log.WithField("error", err.Error()).Error("data load failed")
	http.Error(w, "failed to load data", http.StatusInternalServerError)
}
