// Package sanitize strips markup from free-form text fields before they are
// persisted. Recall defect descriptions and fix methods arrive from external
// filings and sometimes carry stray HTML.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// TextPtr sanitizes an optional string in place. A value reduced to the empty
// string becomes nil so the column stays NULL.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Text(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
