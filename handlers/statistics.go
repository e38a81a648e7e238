// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/enrollment-stats/cliparse"
	"github.com/danielhkuo/enrollment-stats/middleware"
	"github.com/danielhkuo/enrollment-stats/store"
)

type StatisticsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewStatisticsHandler(st *store.Store, cfg cliparse.Config) *StatisticsHandler {
	return &StatisticsHandler{store: st, cfg: cfg}
}

// GetAllStatistics handles GET /getallstatistics/?zip_code=&state=&county=
func (h *StatisticsHandler) GetAllStatistics(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatisticsFilter(r.URL.Query())
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			middleware.ValidationErrorResponse(w, verr.Fields)
		case errors.Is(err, ErrFilterRequired):
			middleware.ErrorResponse(w, http.StatusBadRequest, MsgFilterRequired)
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	h.respond(w, r, filter)
}

// GetStatisticsByCountry handles GET /getstatisticsbycountry/?country=
// Only "USA" and "America" (any case) are accepted; both cover every record.
func (h *StatisticsHandler) GetStatisticsByCountry(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCountry(r.URL.Query())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgCountryRequired)
		return
	}

	h.respond(w, r, filter)
}

func (h *StatisticsHandler) respond(w http.ResponseWriter, r *http.Request, filter store.Filter) {
	sess, err := h.store.Session(r.Context())
	if err != nil {
		slog.Error("failed to acquire session", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	defer sess.Close()

	records, err := sess.Query(r.Context(), filter)
	if err != nil {
		slog.Error("failed to query enrollments", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Debug("statistics computed", "records", len(records))

	middleware.JSONResponse(w, http.StatusOK, Aggregate(records))
}
