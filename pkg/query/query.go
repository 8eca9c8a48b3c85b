// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-valued and optional query-string parameters.
package query

import (
	"strconv"
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// OptionalBool parses "true"/"false"/"1"/"0". Empty or invalid input
// yields nil, meaning "no filter".
func OptionalBool(val string) *bool {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return nil
	}
	return &b
}
