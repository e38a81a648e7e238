// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /add/", middleware.WithLogging(h.Add))

Each request is logged at start and completion with method, path, client
IP, status and duration. A request ID is taken from X-Request-ID or
generated as a UUID, echoed in the response header and available to
handlers through RequestID(r.Context()).

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, stats)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationErrorResponse(w, details)
	err := middleware.ParseJSONBody(r, &req)

Error responses share one shape:

	{"error": "Bad Request", "message": "...", "details": [{"field": "...", "message": "..."}]}

# CORS

CORS wraps the whole mux and allows any origin, reflecting the request's
Origin header when present. OPTIONS preflight requests are answered
directly.

# Client IP

GetClientIP checks X-Forwarded-For (first hop), then X-Real-IP, then the
host part of RemoteAddr.
*/
package middleware
