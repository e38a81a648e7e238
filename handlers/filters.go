// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/enrollment-stats/store"
)

// Fixed client-facing messages for the statistics endpoints
const (
	MsgFilterRequired  = "At least one parameter (zip_code, state, or county) must be provided"
	MsgCountryRequired = "Country must be 'USA' or 'America'"
)

var (
	ErrFilterRequired = errors.New("no filter parameter provided")
	ErrUnknownCountry = errors.New("country is not a recognized alias")
)

// countryAliases are matched case-insensitively and select every record
var countryAliases = []string{"usa", "america"}

// parseStatisticsFilter reads zip_code, state and county from the query.
// Empty values and zip_code=0 count as absent.
func parseStatisticsFilter(q url.Values) (store.Filter, error) {
	var f store.Filter

	if raw := q.Get("zip_code"); raw != "" {
		zip, err := strconv.Atoi(raw)
		if err != nil {
			verr := &ValidationError{}
			verr.add("zip_code", "must be an integer")
			return store.Filter{}, verr
		}
		if zip != 0 {
			f.ZipCode = &zip
		}
	}
	if state := q.Get("state"); state != "" {
		f.State = &state
	}
	if county := q.Get("county"); county != "" {
		f.County = &county
	}

	if f.IsEmpty() {
		return store.Filter{}, ErrFilterRequired
	}
	return f, nil
}

// parseCountry accepts only the whole-country aliases and returns an
// empty filter, which matches every record
func parseCountry(q url.Values) (store.Filter, error) {
	country := q.Get("country")
	for _, alias := range countryAliases {
		if strings.EqualFold(country, alias) {
			return store.Filter{}, nil
		}
	}
	return store.Filter{}, ErrUnknownCountry
}
