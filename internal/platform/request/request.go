// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil extracts typed values from HTTP requests: path
parameters, JSON bodies and the content locale.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/newsdesk/internal/platform/locale"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
)

// DecodeJSON decodes the request body into target.
// It returns [validate.ErrInvalidJSON] on malformed input.
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID parses a numeric path parameter.
func ID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return id, nil
}

// Query returns a query-string parameter.
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

// Locale resolves the "locale" query parameter against the configured set,
// falling back to the default locale when absent.
func Locale(request *http.Request, locales locale.Set) (string, error) {
	return LocaleParam(request, "locale", locales)
}

// LocaleParam is [Locale] for an arbitrary query parameter name.
func LocaleParam(request *http.Request, name string, locales locale.Set) (string, error) {
	code, ok := locales.Resolve(Query(request, name))
	if !ok {
		v := &validate.Validator{}
		return "", v.Locale(name, Query(request, name), locales).Err()
	}
	return code, nil
}
