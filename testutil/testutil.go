// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/enrollment-stats/cliparse"
	"github.com/danielhkuo/enrollment-stats/db"
	"github.com/danielhkuo/enrollment-stats/models"
	"github.com/danielhkuo/enrollment-stats/store"
)

// SetupTestDB creates a migrated SQLite database in a temp dir.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "test.db")

	if _, err := db.Migrate(db.TypeSQLite, url); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	conn, err := db.Open(context.Background(), db.TypeSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupTestStore returns a store over a fresh test database
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseType:    db.TypeSQLite,
		DatabaseURL:     "file:test.db",
		LogFormat:       "text",
		ShutdownTimeout: cliparse.DefaultShutdownTimeout,
	}
}

// SampleInput returns a complete record for the given region and year
func SampleInput(zip int, state, county string, year int) models.EnrollmentInput {
	return models.EnrollmentInput{
		ZipCode:          zip,
		State:            state,
		County:           county,
		Year:             year,
		HealthEnrollment: 100,
		DentalEnrollment: 50,
		Male:             30,
		Female:           70,
		LowIncome:        20,
		MidIncome:        50,
		HighIncome:       30,
		Age18To25:        10,
		Age25To35:        20,
		Age35To45:        30,
		Age45To55:        25,
		Age56Plus:        15,
	}
}

// RequestFromInput converts an input to the request body shape
func RequestFromInput(in models.EnrollmentInput) models.EnrollmentRequest {
	return models.EnrollmentRequest{
		ZipCode:          &in.ZipCode,
		State:            &in.State,
		County:           &in.County,
		Year:             &in.Year,
		HealthEnrollment: &in.HealthEnrollment,
		DentalEnrollment: &in.DentalEnrollment,
		Male:             &in.Male,
		Female:           &in.Female,
		LowIncome:        &in.LowIncome,
		MidIncome:        &in.MidIncome,
		HighIncome:       &in.HighIncome,
		Age18To25:        &in.Age18To25,
		Age25To35:        &in.Age25To35,
		Age35To45:        &in.Age35To45,
		Age45To55:        &in.Age45To55,
		Age56Plus:        &in.Age56Plus,
	}
}

// InsertTestEnrollment stores a record with the given percentages as-is
func InsertTestEnrollment(t *testing.T, st *store.Store, e models.Enrollment) models.Enrollment {
	t.Helper()

	ctx := context.Background()
	sess, err := st.Session(ctx)
	if err != nil {
		t.Fatalf("Failed to open session: %v", err)
	}
	defer sess.Close()

	saved, err := sess.Insert(ctx, e)
	if err != nil {
		t.Fatalf("Failed to insert test enrollment: %v", err)
	}
	return saved
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
