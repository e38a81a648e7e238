// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/danielhkuo/enrollment-stats/models"
)

// ValidationError carries field-level problems with a request
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

// validateEnrollment checks that every field is present and every count
// is non-negative. prefix is prepended to field names ("[3]." for bulk).
func validateEnrollment(req models.EnrollmentRequest, prefix string) (models.EnrollmentInput, *ValidationError) {
	verr := &ValidationError{}

	str := func(name string, v *string) string {
		if v == nil {
			verr.add(prefix+name, "field required")
			return ""
		}
		return *v
	}
	num := func(name string, v *int) int {
		if v == nil {
			verr.add(prefix+name, "field required")
			return 0
		}
		return *v
	}
	count := func(name string, v *int) int {
		n := num(name, v)
		if v != nil && n < 0 {
			verr.add(prefix+name, "must be non-negative")
		}
		return n
	}

	in := models.EnrollmentInput{
		ZipCode:          num("zip_code", req.ZipCode),
		State:            str("state", req.State),
		County:           str("county", req.County),
		Year:             num("year", req.Year),
		HealthEnrollment: count("health_enrollment", req.HealthEnrollment),
		DentalEnrollment: count("dental_enrollment", req.DentalEnrollment),
		Male:             count("male", req.Male),
		Female:           count("female", req.Female),
		LowIncome:        count("low_income", req.LowIncome),
		MidIncome:        count("mid_income", req.MidIncome),
		HighIncome:       count("high_income", req.HighIncome),
		Age18To25:        count("age_18_25", req.Age18To25),
		Age25To35:        count("age_25_35", req.Age25To35),
		Age35To45:        count("age_35_45", req.Age35To45),
		Age45To55:        count("age_45_55", req.Age45To55),
		Age56Plus:        count("age_56_plus", req.Age56Plus),
	}

	if len(verr.Fields) > 0 {
		return models.EnrollmentInput{}, verr
	}
	return in, nil
}

// validateBulk validates every element before anything is stored
func validateBulk(reqs []models.EnrollmentRequest) ([]models.EnrollmentInput, *ValidationError) {
	inputs := make([]models.EnrollmentInput, 0, len(reqs))
	all := &ValidationError{}

	for i, req := range reqs {
		in, verr := validateEnrollment(req, "["+strconv.Itoa(i)+"].")
		if verr != nil {
			all.Fields = append(all.Fields, verr.Fields...)
			continue
		}
		inputs = append(inputs, in)
	}

	if len(all.Fields) > 0 {
		return nil, all
	}
	return inputs, nil
}

// decodeError turns a JSON type mismatch into a field-level error.
// Other decode errors return nil and are reported as invalid JSON.
func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil
	}

	field := typeErr.Field
	if field == "" {
		field = "body"
	}

	t := typeErr.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	msg := "has the wrong type"
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		msg = "must be an integer"
	case reflect.String:
		msg = "must be a string"
	case reflect.Slice:
		msg = "must be an array"
	case reflect.Struct:
		msg = "must be an object"
	}

	verr := &ValidationError{}
	verr.add(field, msg)
	return verr
}
