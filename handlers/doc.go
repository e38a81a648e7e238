// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers and the statistics math.

# Handler Types

Each handler is a struct with store and config dependencies:

  - EnrollmentHandler: record ingestion (single and bulk)
  - StatisticsHandler: aggregated statistics by filter or country
  - LandingHandler: HTML landing page

Handlers are created via constructor functions:

	enrollmentHandler := handlers.NewEnrollmentHandler(st, cfg)

Every handler that touches the database acquires a store.Session at the
start of the request and releases it with defer, on success and on error.

# Ingestion

	POST /add/      → Add (returns the stored record, 201)
	POST /add_bulk/ → AddBulk (returns {"message": "Bulk data added successfully"}, 201)

All sixteen fields are required and every count must be non-negative. Bulk requests are validated as a whole before any
record is stored. When INGEST_KEY is set, the X-Ingest-Key header must match.

# Percentages

ComputePercentages derives ten percentages from the raw counts once, at
ingestion. They are stored and never recomputed:

	male% = 100 * male / (male + female)
	low%  = 100 * low_income / (low_income + mid_income + high_income)
	18-25% = 100 * age_18_25 / (sum of the five age buckets)

A zero denominator stores 0 for every percentage that uses it.

# Statistics

	GET /getallstatistics/?zip_code=&state=&county= → GetAllStatistics
	GET /getstatisticsbycountry/?country=            → GetStatisticsByCountry

Aggregate averages the stored per-record percentages (unweighted),
computes health/dental shares from summed counts, and sums enrollment per
year. No matching records gives an all-zero response with an empty
enrollment_by_year.

# Errors

  - 400 field-level validation errors
  - 400 "At least one parameter (zip_code, state, or county) must be provided"
  - 400 "Country must be 'USA' or 'America'"
  - 401 invalid ingest key
  - 413 request body too large
  - 503 no database connection, 500 query or insert failure
*/
package handlers
