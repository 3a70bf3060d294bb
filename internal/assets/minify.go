// Package assets minifies and compresses the site's static CSS and JS
// files. The minifiers are deliberately conservative text transforms, not
// full parsers.
package assets

import (
	"regexp"
	"strings"
)

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	cssPunctRe     = regexp.MustCompile(`\s*([{}:;,>+~])\s*`)
	jsLineCommentRe = regexp.MustCompile(`(?m)(^|[^:])//[^\n]*$`)
	jsPunctRe       = regexp.MustCompile(`\s*([{}();,=+\-*/])\s*`)
)

// MinifyCSS strips comments and redundant whitespace from a stylesheet
func MinifyCSS(content string) string {
	// Remove comments
	content = blockCommentRe.ReplaceAllString(content, "")

	// Collapse whitespace
	content = whitespaceRe.ReplaceAllString(content, " ")

	// Remove whitespace around punctuation
	content = cssPunctRe.ReplaceAllString(content, "$1")

	// Remove trailing semicolons
	content = strings.ReplaceAll(content, ";}", "}")

	return strings.TrimSpace(content)
}

// MinifyJS strips comments and redundant whitespace from a script. Line
// comments preceded by a colon are preserved so protocol-relative URLs
// survive.
func MinifyJS(content string) string {
	// Remove single-line comments (but preserve URLs)
	content = jsLineCommentRe.ReplaceAllString(content, "$1")

	// Remove multi-line comments
	content = blockCommentRe.ReplaceAllString(content, "")

	// Collapse whitespace
	content = whitespaceRe.ReplaceAllString(content, " ")

	// Remove whitespace around operators and punctuation
	content = jsPunctRe.ReplaceAllString(content, "$1")

	return strings.TrimSpace(content)
}
