// Package sanitize strips markup and script from user-supplied free text.
// Every free-text field goes through the same pass at signup and on update.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML elements and attributes and trims whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// TextPtr sanitizes through the pointer used by partial-update payloads.
// A nil pointer stays nil so an omitted field stays untouched.
func TextPtr(p *string) *string {
	if p == nil {
		return nil
	}
	clean := Text(*p)
	return &clean
}
