// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/url"
	"testing"
)

func TestParseStatisticsFilter(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantErr    error
		wantZip    *int
		wantState  string
		wantCounty string
	}{
		{name: "no params", query: "", wantErr: ErrFilterRequired},
		{name: "empty values", query: "zip_code=&state=&county=", wantErr: ErrFilterRequired},
		{name: "zero zip is absent", query: "zip_code=0", wantErr: ErrFilterRequired},
		{name: "zip only", query: "zip_code=10001", wantZip: intPtr(10001)},
		{name: "state only", query: "state=NY", wantState: "NY"},
		{name: "county only", query: "county=Kings", wantCounty: "Kings"},
		{name: "all three", query: "zip_code=10001&state=NY&county=New+York", wantZip: intPtr(10001), wantState: "NY", wantCounty: "New York"},
		{name: "zero zip with state", query: "zip_code=0&state=NY", wantState: "NY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			f, err := parseStatisticsFilter(q)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if (f.ZipCode == nil) != (tt.wantZip == nil) || (f.ZipCode != nil && *f.ZipCode != *tt.wantZip) {
				t.Errorf("Expected zip %v, got %v", tt.wantZip, f.ZipCode)
			}
			if got := deref(f.State); got != tt.wantState {
				t.Errorf("Expected state %q, got %q", tt.wantState, got)
			}
			if got := deref(f.County); got != tt.wantCounty {
				t.Errorf("Expected county %q, got %q", tt.wantCounty, got)
			}
		})
	}
}

func TestParseStatisticsFilter_BadZip(t *testing.T) {
	q, _ := url.ParseQuery("zip_code=abc&state=NY")
	_, err := parseStatisticsFilter(q)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "zip_code" {
		t.Errorf("Expected zip_code field error, got %+v", verr.Fields)
	}
}

func TestParseCountry(t *testing.T) {
	tests := []struct {
		query   string
		wantErr bool
	}{
		{"country=USA", false},
		{"country=usa", false},
		{"country=America", false},
		{"country=AMERICA", false},
		{"country=aMeRiCa", false},
		{"country=Canada", true},
		{"country=US", true},
		{"country=", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			f, err := parseCountry(q)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCountry) {
					t.Errorf("Expected ErrUnknownCountry, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !f.IsEmpty() {
				t.Errorf("Expected empty filter, got %+v", f)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
