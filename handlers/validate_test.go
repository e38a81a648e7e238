// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/danielhkuo/enrollment-stats/models"
	"github.com/danielhkuo/enrollment-stats/testutil"
)

func hasField(fields []models.FieldError, field, message string) bool {
	for _, f := range fields {
		if f.Field == field && f.Message == message {
			return true
		}
	}
	return false
}

func TestValidateEnrollment(t *testing.T) {
	t.Run("complete request", func(t *testing.T) {
		want := testutil.SampleInput(10001, "NY", "New York", 2023)
		in, verr := validateEnrollment(testutil.RequestFromInput(want), "")
		if verr != nil {
			t.Fatalf("Unexpected validation error: %v", verr)
		}
		if in != want {
			t.Errorf("Expected %+v, got %+v", want, in)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		req := testutil.RequestFromInput(testutil.SampleInput(10001, "NY", "New York", 2023))
		req.State = nil
		req.Age56Plus = nil

		_, verr := validateEnrollment(req, "")
		if verr == nil {
			t.Fatal("Expected validation error")
		}
		if len(verr.Fields) != 2 {
			t.Errorf("Expected 2 field errors, got %+v", verr.Fields)
		}
		if !hasField(verr.Fields, "state", "field required") || !hasField(verr.Fields, "age_56_plus", "field required") {
			t.Errorf("Unexpected field errors: %+v", verr.Fields)
		}
	})

	t.Run("empty request reports every field", func(t *testing.T) {
		_, verr := validateEnrollment(models.EnrollmentRequest{}, "")
		if verr == nil || len(verr.Fields) != 16 {
			t.Fatalf("Expected 16 field errors, got %v", verr)
		}
	})

	t.Run("negative enrollment", func(t *testing.T) {
		in := testutil.SampleInput(10001, "NY", "New York", 2023)
		in.HealthEnrollment = -1
		in.DentalEnrollment = -2

		_, verr := validateEnrollment(testutil.RequestFromInput(in), "")
		if verr == nil {
			t.Fatal("Expected validation error")
		}
		if !hasField(verr.Fields, "health_enrollment", "must be non-negative") ||
			!hasField(verr.Fields, "dental_enrollment", "must be non-negative") {
			t.Errorf("Unexpected field errors: %+v", verr.Fields)
		}
	})

	t.Run("negative demographic counts", func(t *testing.T) {
		in := testutil.SampleInput(10001, "NY", "New York", 2023)
		in.Male = -10
		in.Female = 30
		in.MidIncome = -1
		in.Age45To55 = -4

		_, verr := validateEnrollment(testutil.RequestFromInput(in), "")
		if verr == nil {
			t.Fatal("Expected validation error")
		}
		for _, field := range []string{"male", "mid_income", "age_45_55"} {
			if !hasField(verr.Fields, field, "must be non-negative") {
				t.Errorf("Expected %s to be rejected, got %+v", field, verr.Fields)
			}
		}
		if hasField(verr.Fields, "female", "must be non-negative") {
			t.Error("Expected female to pass")
		}
	})

	t.Run("zero counts are allowed", func(t *testing.T) {
		_, verr := validateEnrollment(testutil.RequestFromInput(models.EnrollmentInput{State: "NY", County: "Kings"}), "")
		if verr != nil {
			t.Errorf("Expected all-zero record to pass, got %v", verr)
		}
	})

	t.Run("prefix", func(t *testing.T) {
		_, verr := validateEnrollment(models.EnrollmentRequest{}, "[2].")
		if verr == nil || !hasField(verr.Fields, "[2].zip_code", "field required") {
			t.Errorf("Expected prefixed field name, got %v", verr)
		}
	})
}

func TestValidateBulk(t *testing.T) {
	good := testutil.RequestFromInput(testutil.SampleInput(10001, "NY", "New York", 2023))

	inputs, verr := validateBulk([]models.EnrollmentRequest{good, good})
	if verr != nil {
		t.Fatalf("Unexpected validation error: %v", verr)
	}
	if len(inputs) != 2 {
		t.Errorf("Expected 2 inputs, got %d", len(inputs))
	}

	bad := good
	bad.Year = nil
	_, verr = validateBulk([]models.EnrollmentRequest{good, bad, good})
	if verr == nil {
		t.Fatal("Expected validation error")
	}
	if !hasField(verr.Fields, "[1].year", "field required") {
		t.Errorf("Expected [1].year error, got %+v", verr.Fields)
	}
	if !strings.Contains(verr.Error(), "[1].year: field required") {
		t.Errorf("Unexpected error text: %s", verr.Error())
	}
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		target    any
		wantField string
		wantMsg   string
	}{
		{"string for int", `{"zip_code":"abc"}`, &models.EnrollmentRequest{}, "zip_code", "must be an integer"},
		{"int for string", `{"state":5}`, &models.EnrollmentRequest{}, "state", "must be a string"},
		{"object for array", `{"zip_code":1}`, &[]models.EnrollmentRequest{}, "body", "must be an array"},
		{"array for object", `[1]`, &models.EnrollmentRequest{}, "body", "must be an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.target)
			if err == nil {
				t.Fatal("Expected decode error")
			}
			verr := decodeError(err)
			if verr == nil {
				t.Fatalf("Expected ValidationError for %v", err)
			}
			if !hasField(verr.Fields, tt.wantField, tt.wantMsg) {
				t.Errorf("Expected %s: %s, got %+v", tt.wantField, tt.wantMsg, verr.Fields)
			}
		})
	}

	if verr := decodeError(json.Unmarshal([]byte(`{`), &models.EnrollmentRequest{})); verr != nil {
		t.Errorf("Expected nil for syntax error, got %v", verr)
	}
}
