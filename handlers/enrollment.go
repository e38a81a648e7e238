// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/enrollment-stats/auth"
	"github.com/danielhkuo/enrollment-stats/cliparse"
	"github.com/danielhkuo/enrollment-stats/middleware"
	"github.com/danielhkuo/enrollment-stats/models"
	"github.com/danielhkuo/enrollment-stats/store"
)

const (
	maxRecordBody = 1 << 20  // 1 MiB
	maxBulkBody   = 32 << 20 // 32 MiB
)

type EnrollmentHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewEnrollmentHandler(st *store.Store, cfg cliparse.Config) *EnrollmentHandler {
	return &EnrollmentHandler{store: st, cfg: cfg}
}

// Add handles POST /add/
func (h *EnrollmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRecordBody)
	var req models.EnrollmentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	in, verr := validateEnrollment(req, "")
	if verr != nil {
		middleware.ValidationErrorResponse(w, verr.Fields)
		return
	}

	sess, err := h.store.Session(r.Context())
	if err != nil {
		slog.Error("failed to acquire session", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	defer sess.Close()

	saved, err := sess.Insert(r.Context(), NewEnrollment(in))
	if err != nil {
		slog.Error("failed to insert enrollment", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add data")
		return
	}

	slog.Info("enrollment added",
		"id", saved.ID,
		"zip_code", saved.ZipCode,
		"state", saved.State,
		"county", saved.County,
		"year", saved.Year,
	)

	middleware.JSONResponse(w, http.StatusCreated, saved)
}

// AddBulk handles POST /add_bulk/
// Every element is validated before anything is stored. Storage itself is
// not atomic: if a record fails, the ones before it stay stored.
func (h *EnrollmentHandler) AddBulk(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBulkBody)
	var reqs []models.EnrollmentRequest
	if err := middleware.ParseJSONBody(r, &reqs); err != nil {
		writeDecodeError(w, err)
		return
	}
	if reqs == nil {
		middleware.ValidationErrorResponse(w, []models.FieldError{{Field: "body", Message: "must be an array"}})
		return
	}

	inputs, verr := validateBulk(reqs)
	if verr != nil {
		middleware.ValidationErrorResponse(w, verr.Fields)
		return
	}

	records := make([]models.Enrollment, len(inputs))
	for i, in := range inputs {
		records[i] = NewEnrollment(in)
	}

	sess, err := h.store.Session(r.Context())
	if err != nil {
		slog.Error("failed to acquire session", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	defer sess.Close()

	start := time.Now()
	stored, err := sess.InsertBulk(r.Context(), records)
	if err != nil {
		slog.Error("bulk insert aborted",
			"error", err,
			"stored", stored,
			"requested", len(records),
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to add bulk data: %d of %d records were stored before the failure", stored, len(records)))
		return
	}

	slog.Info("bulk enrollments added",
		"count", humanize.Comma(int64(stored)),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.BulkAddResponse{
		Message: models.BulkAddedMessage,
		Count:   stored,
	})
}

// authorize enforces the ingest key when one is configured
func (h *EnrollmentHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	err := auth.ValidateIngestKey(r.Header.Get(auth.HeaderIngestKey), h.cfg.IngestKey)
	if err == nil {
		return true
	}
	slog.Warn("rejected write request", "error", err, "remote", middleware.GetClientIP(r))
	middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid ingest key")
	return false
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	if verr := decodeError(err); verr != nil {
		middleware.ValidationErrorResponse(w, verr.Fields)
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
}
