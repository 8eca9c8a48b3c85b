// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug turns arbitrary Unicode titles into ASCII URL segments.
//
// Latin text loses its accents ("Café" → "cafe"); other scripts are
// transliterated first ("Привет мир" → "privet-mir").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any run of characters outside [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// From converts s into a lowercase, hyphen-separated ASCII slug.
//
// # Pipeline
//
//  1. NFD-normalise and drop combining marks.
//  2. Transliterate what is left to ASCII.
//  3. Lowercase, replace every non-alphanumeric run with one hyphen, trim.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, s)

	result = unidecode.Unidecode(result)
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// Path slugifies every "/"-separated segment of p, dropping empty ones.
// The result starts with "/" and has no trailing slash; it is "" when no
// segment survives.
func Path(p string) string {
	var segments []string
	for _, segment := range strings.Split(p, "/") {
		if s := From(segment); s != "" {
			segments = append(segments, s)
		}
	}

	if len(segments) == 0 {
		return ""
	}
	return "/" + strings.Join(segments, "/")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
