// Package sanitize provides HTML sanitization for admin-supplied content.
// Uses bluemonday to strip dangerous HTML (script tags, event handlers,
// javascript: URLs) before anything is stored in the database.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    *bluemonday.Policy
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

func initPolicies() {
	policyOnce.Do(func() {
		// The "about" blurbs on species pages are authored in a rich
		// text editor, so safe formatting tags survive.
		ugcPolicy = bluemonday.UGCPolicy()
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// HTML sanitizes rich text content, keeping safe formatting tags while
// stripping scripts, iframes and event handlers. Must be called on all
// admin-provided HTML before storing it.
func HTML(input string) string {
	if input == "" {
		return ""
	}
	initPolicies()
	return ugcPolicy.Sanitize(input)
}

// Text strips all HTML from a value that should be plain text, such as
// names and ingredient lines.
func Text(input string) string {
	if input == "" {
		return ""
	}
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

// TextSlice applies Text to every element of a slice in place and
// returns the slice.
func TextSlice(in []string) []string {
	for i, v := range in {
		in[i] = Text(v)
	}
	return in
}
