// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the enrollment statistics API.

# Route Registration

NewRouter builds a ServeMux with all endpoints and wraps it in CORS:

	handler := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Ingestion (X-Ingest-Key when INGEST_KEY is set):

	POST /add/      - Add one record
	POST /add_bulk/ - Add an array of records

Statistics (public):

	GET /getallstatistics/?zip_code=&state=&county=
	GET /getstatisticsbycountry/?country=USA

Landing page:

	GET /

Paths match exactly ({$}); /add/extra is a 404.

# Handler Initialization

The router creates handler instances with dependency injection:

	enrollmentHandler := handlers.NewEnrollmentHandler(st, cfg)
	statisticsHandler := handlers.NewStatisticsHandler(st, cfg)
	landingHandler := handlers.NewLandingHandler(st)

All handlers receive the store and configuration; nothing is global.
*/
package router
