// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/enrollment-stats/middleware"
	"github.com/danielhkuo/enrollment-stats/models"
	"github.com/danielhkuo/enrollment-stats/store"
	"github.com/danielhkuo/enrollment-stats/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(store.New(db), testutil.GetTestConfig())
	db.Close()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "Enrollment Statistics API") {
		t.Errorf("Expected landing page, got '%s'", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	// Routes must reach a handler. Bad input is fine, a mux 404/405 is not.
	testCases := []struct {
		method string
		path   string
		body   interface{}
	}{
		{"GET", "/health", nil},
		{"GET", "/", nil},
		{"POST", "/add/", map[string]int{}},
		{"POST", "/add_bulk/", []int{}},
		{"GET", "/getallstatistics/?state=NY", nil},
		{"GET", "/getstatisticsbycountry/?country=USA", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeRequest(tc.method, tc.path, tc.body, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/add/"},
		{"PUT", "/add/"},
		{"GET", "/add_bulk/"},
		{"POST", "/getallstatistics/"},
		{"DELETE", "/getstatisticsbycountry/"},
		{"POST", "/health"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPaths(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	for _, path := range []string{"/add/extra", "/getallstatistics/nested", "/statistics", "/nope"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Expected 404 for %s, got %d", path, w.Code)
			}
		})
	}
}

func TestStatisticsThroughRouter(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/getallstatistics/", nil, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "At least one parameter (zip_code, state, or county) must be provided" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}

	if w.Header().Get(middleware.HeaderRequestID) == "" {
		t.Error("Expected request ID header on API routes")
	}
}

func TestPreflight(t *testing.T) {
	mux := NewRouter(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("OPTIONS", "/add_bulk/", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.org" {
		t.Errorf("Expected origin to be reflected, got %q", got)
	}
}
