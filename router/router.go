// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/enrollment-stats/cliparse"
	"github.com/danielhkuo/enrollment-stats/handlers"
	"github.com/danielhkuo/enrollment-stats/middleware"
	"github.com/danielhkuo/enrollment-stats/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	enrollmentHandler := handlers.NewEnrollmentHandler(st, cfg)
	statisticsHandler := handlers.NewStatisticsHandler(st, cfg)
	landingHandler := handlers.NewLandingHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Ingestion
	mux.HandleFunc("POST /add/{$}", middleware.WithLogging(enrollmentHandler.Add))
	mux.HandleFunc("POST /add_bulk/{$}", middleware.WithLogging(enrollmentHandler.AddBulk))

	// Statistics
	mux.HandleFunc("GET /getallstatistics/{$}", middleware.WithLogging(statisticsHandler.GetAllStatistics))
	mux.HandleFunc("GET /getstatisticsbycountry/{$}", middleware.WithLogging(statisticsHandler.GetStatisticsByCountry))

	// Landing page
	mux.Handle("GET /{$}", landingHandler)

	return middleware.CORS(mux)
}
