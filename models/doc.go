// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - EnrollmentRequest: the sixteen raw fields of one submission, as pointers
    so that missing fields can be reported

# Domain Types

  - EnrollmentInput: validated raw counts for one zip/state/county/year
  - Percentages: the ten derived percentages computed at ingestion
  - Enrollment: a stored record (ID + EnrollmentInput + Percentages)

Enrollment embeds both EnrollmentInput and Percentages, so a stored record
serializes as one flat JSON object:

	{"id": 1, "zip_code": 94103, "state": "CA", ..., "male_percentage": 30, ...}

# Response Types

  - Statistics: aggregate returned by the statistics endpoints
  - BulkAddResponse: message and count for POST /add_bulk/
  - ErrorResponse: error, message, and optional field details

# Enrollment By Year

EnrollmentByYear is a map keyed by year. It marshals with keys in ascending
numeric order so responses are deterministic:

	"enrollment_by_year": {"2022": {"health": 30, "dental": 20, "total": 50}}

# Constants

Age group labels:

	AgeGroup18To25 = "18-25"
	AgeGroup25To35 = "25-35"
	AgeGroup35To45 = "35-45"
	AgeGroup45To55 = "45-55"
	AgeGroup56Plus = "56+"
*/
package models
