// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"regexp"
	"strings"
)

// yearSuffix matches a trailing "(YYYY)" release year annotation.
var yearSuffix = regexp.MustCompile(`\s*\(\d{4}\)\s*$`)

// NormalizeTitle trims, lowercases and collapses internal whitespace.
func NormalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// StripYear removes a trailing "(YYYY)" from s and trims the result.
func StripYear(s string) string {
	return strings.TrimSpace(yearSuffix.ReplaceAllString(s, ""))
}

// BaseTitle is the normalized title without its trailing release year.
func BaseTitle(s string) string {
	return StripYear(NormalizeTitle(s))
}
