package models

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"time"
)

// Age group labels used as keys in age_group_percentages
const (
	AgeGroup18To25   = "18-25"
	AgeGroup25To35   = "25-35"
	AgeGroup35To45   = "35-45"
	AgeGroup45To55   = "45-55"
	AgeGroup56Plus   = "56+"
	BulkAddedMessage = "Bulk data added successfully"
)

// Request types

// EnrollmentRequest is the body of POST /add/ (and one element of POST /add_bulk/).
// Pointers distinguish a missing field from an explicit zero.
type EnrollmentRequest struct {
	ZipCode          *int    `json:"zip_code"`
	State            *string `json:"state"`
	County           *string `json:"county"`
	Year             *int    `json:"year"`
	HealthEnrollment *int    `json:"health_enrollment"`
	DentalEnrollment *int    `json:"dental_enrollment"`
	Male             *int    `json:"male"`
	Female           *int    `json:"female"`
	LowIncome        *int    `json:"low_income"`
	MidIncome        *int    `json:"mid_income"`
	HighIncome       *int    `json:"high_income"`
	Age18To25        *int    `json:"age_18_25"`
	Age25To35        *int    `json:"age_25_35"`
	Age35To45        *int    `json:"age_35_45"`
	Age45To55        *int    `json:"age_45_55"`
	Age56Plus        *int    `json:"age_56_plus"`
}

// Domain types

// EnrollmentInput holds the sixteen raw values supplied for one record.
type EnrollmentInput struct {
	ZipCode          int    `json:"zip_code"`
	State            string `json:"state"`
	County           string `json:"county"`
	Year             int    `json:"year"`
	HealthEnrollment int    `json:"health_enrollment"`
	DentalEnrollment int    `json:"dental_enrollment"`
	Male             int    `json:"male"`
	Female           int    `json:"female"`
	LowIncome        int    `json:"low_income"`
	MidIncome        int    `json:"mid_income"`
	HighIncome       int    `json:"high_income"`
	Age18To25        int    `json:"age_18_25"`
	Age25To35        int    `json:"age_25_35"`
	Age35To45        int    `json:"age_35_45"`
	Age45To55        int    `json:"age_45_55"`
	Age56Plus        int    `json:"age_56_plus"`
}

// Percentages are derived once at ingestion and stored verbatim.
// Every value is in [0, 100].
type Percentages struct {
	MalePercentage         float64 `json:"male_percentage"`
	FemalePercentage       float64 `json:"female_percentage"`
	LowIncomePercentage    float64 `json:"low_income_percentage"`
	MediumIncomePercentage float64 `json:"medium_income_percentage"`
	HighIncomePercentage   float64 `json:"high_income_percentage"`
	Age18To25Percentage    float64 `json:"age_18_25_percentage"`
	Age25To35Percentage    float64 `json:"age_25_35_percentage"`
	Age35To45Percentage    float64 `json:"age_35_45_percentage"`
	Age45To55Percentage    float64 `json:"age_45_55_percentage"`
	Age56PlusPercentage    float64 `json:"age_56_plus_percentage"`
}

// Enrollment is one stored record. Records are never updated or deleted.
type Enrollment struct {
	ID int64 `json:"id"`
	EnrollmentInput
	Percentages
	CreatedAt time.Time `json:"created_at"`
}

// Response types

type BulkAddResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type GenderPercentages struct {
	MalePercentage   float64 `json:"male_percentage"`
	FemalePercentage float64 `json:"female_percentage"`
}

type EnrollmentPercentages struct {
	HealthEnrollmentPercentage float64 `json:"health_enrollment_percentage"`
	DentalEnrollmentPercentage float64 `json:"dental_enrollment_percentage"`
}

type IncomeCategories struct {
	LowIncomePercentage    float64 `json:"low_income_percentage"`
	MediumIncomePercentage float64 `json:"medium_income_percentage"`
	HighIncomePercentage   float64 `json:"high_income_percentage"`
}

type AgeGroupPercentages struct {
	Age18To25 float64 `json:"18-25"`
	Age25To35 float64 `json:"25-35"`
	Age35To45 float64 `json:"35-45"`
	Age45To55 float64 `json:"45-55"`
	Age56Plus float64 `json:"56+"`
}

// YearTotals sums enrollment counts for a single year
type YearTotals struct {
	Health int64 `json:"health"`
	Dental int64 `json:"dental"`
	Total  int64 `json:"total"`
}

// EnrollmentByYear maps a year to its enrollment sums.
// It marshals as a JSON object with keys in ascending numeric order.
type EnrollmentByYear map[int]YearTotals

// Years returns the keys in ascending order
func (e EnrollmentByYear) Years() []int {
	years := make([]int, 0, len(e))
	for y := range e {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}

func (e EnrollmentByYear) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, year := range e.Years() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(year)))
		buf.WriteByte(':')
		totals, err := json.Marshal(e[year])
		if err != nil {
			return nil, err
		}
		buf.Write(totals)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Statistics is the aggregate returned by both statistics endpoints
type Statistics struct {
	GenderPercentages     GenderPercentages     `json:"gender_percentages"`
	EnrollmentPercentages EnrollmentPercentages `json:"enrollment_percentages"`
	IncomeCategories      IncomeCategories      `json:"income_categories"`
	AgeGroupPercentages   AgeGroupPercentages   `json:"age_group_percentages"`
	EnrollmentByYear      EnrollmentByYear      `json:"enrollment_by_year"`
}

// Error response

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}
