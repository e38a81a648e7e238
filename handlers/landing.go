// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/enrollment-stats/store"
)

//go:embed templates/index.html
var templateFS embed.FS

var landingTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const landingTitle = "Enrollment Statistics API"

type landingData struct {
	Title        string
	Records      string
	RecordsKnown bool
}

type LandingHandler struct {
	store *store.Store
}

func NewLandingHandler(st *store.Store) *LandingHandler {
	return &LandingHandler{store: st}
}

// ServeHTTP handles GET /. The record count is best effort; the page
// renders without it when the database is unavailable.
func (h *LandingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := landingData{Title: landingTitle}
	if sess, err := h.store.Session(r.Context()); err == nil {
		if n, err := sess.Count(r.Context()); err == nil {
			data.Records = humanize.Comma(int64(n))
			data.RecordsKnown = true
		}
		sess.Close()
	}

	var buf bytes.Buffer
	if err := landingTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render landing page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
