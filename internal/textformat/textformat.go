// Package textformat prepares free text for XHTML attribute values.
package textformat

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	divOpen  = "<xhtml:div>"
	divClose = "</xhtml:div>"
)

// tagPattern is deliberately permissive: anything between angle brackets is a tag.
var tagPattern = regexp.MustCompile(`(?s)<[^>]*>`)

// WrapXHTML HTML-encodes s and wraps it in an xhtml:div. Text that already holds an
// xhtml:div, in any letter case, is returned unchanged so wrapping happens once.
func WrapXHTML(s string) string {
	if IsWrapped(s) {
		return s
	}

	return divOpen + html.EscapeString(s) + divClose
}

// IsWrapped reports whether s already contains an xhtml:div opening tag.
func IsWrapped(s string) bool {
	return strings.Contains(strings.ToLower(s), "<xhtml:div")
}

// StripTags HTML-decodes s and removes every tag-like substring.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(html.UnescapeString(s), "")
}

// Format applies WrapXHTML when addXhtmlTags is set and StripTags otherwise.
func Format(s string, addXhtmlTags bool) string {
	if addXhtmlTags {
		return WrapXHTML(s)
	}

	return StripTags(s)
}
