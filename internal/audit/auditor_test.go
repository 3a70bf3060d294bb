package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="description" content="A well-formed page.">
    <title>Good Page</title>
    <style>body { color: #111; background: #fff; } @media (prefers-color-scheme: dark) { body { color: #eee; } }</style>
</head>
<body>
    <a href="#main" class="skip-link">Skip to content</a>
    <h1>Heading</h1>
    <h2>Subheading</h2>
    <img src="/a.jpg" alt="A descriptive caption" loading="lazy">
    <form>
        <label for="email">Email</label>
        <input type="email" id="email">
        <input type="submit" value="Go">
    </form>
    <a href="https://example.com" target="_blank" rel="noopener noreferrer">External resource</a>
    <nav aria-label="Main"><span role="navigation" aria-hidden="true"></span></nav>
</body>
</html>`

const badPage = `<html>
<head></head>
<body>
    <h2>Starts at two</h2>
    <h1>One</h1>
    <h1>Another one</h1>
    <img src="/a.jpg">
    <form>
        <input type="text">
        <label for="named">Named</label>
        <input type="text" id="unlabeled">
    </form>
    <a href="https://example.com" target="_blank">click here</a>
    <div tabindex="3">Focusable</div>
</body>
</html>`

func TestAuditGoodPage(t *testing.T) {
	auditor := NewAuditor()
	require.NoError(t, auditor.AuditHTML(goodPage))

	assert.Empty(t, auditor.Issues)
	assert.Contains(t, auditor.Passed, "HTML lang attribute present")
	assert.Contains(t, auditor.Passed, "Page title present")
	assert.Contains(t, auditor.Passed, "Meta description present")
	assert.Contains(t, auditor.Passed, "Viewport meta tag present")
	assert.Contains(t, auditor.Passed, "Exactly one H1 tag found")
	assert.Contains(t, auditor.Passed, "Image has descriptive alt text")
	assert.Contains(t, auditor.Passed, "1 images use lazy loading")
	assert.Contains(t, auditor.Passed, "Form input has associated label")
	assert.Contains(t, auditor.Passed, "External link has security attributes")
	assert.Contains(t, auditor.Passed, "Dark mode support detected")
	assert.Contains(t, auditor.Passed, "Skip links found for keyboard navigation")
}

func TestAuditBadPage(t *testing.T) {
	auditor := NewAuditor()
	require.NoError(t, auditor.AuditHTML(badPage))

	assert.Contains(t, auditor.Issues, "Missing lang attribute on <html> tag")
	assert.Contains(t, auditor.Issues, "Missing or empty page title")
	assert.Contains(t, auditor.Issues, "Missing viewport meta tag")
	assert.Contains(t, auditor.Issues, "Multiple H1 tags found (2)")
	assert.Contains(t, auditor.Issues, "Image missing alt attribute")
	assert.Contains(t, auditor.Issues, "Form input missing id attribute")
	assert.Contains(t, auditor.Issues, "Form input missing associated label")
	assert.Contains(t, auditor.Warnings, "Missing meta description")
	assert.Contains(t, auditor.Warnings, "Link has non-descriptive text")
	assert.Contains(t, auditor.Warnings, "External link missing security attributes")
	assert.Contains(t, auditor.Warnings, "Positive tabindex found - may disrupt tab order")
}

func TestAuditHeadingHierarchySkip(t *testing.T) {
	page := `<html lang="en"><head><title>T</title></head><body><h1>One</h1><h4>Deep</h4></body></html>`

	auditor := NewAuditor()
	require.NoError(t, auditor.AuditHTML(page))

	assert.Contains(t, auditor.Warnings, "Heading hierarchy skip detected: h1 to h4")
}

func TestAuditDecorativeImage(t *testing.T) {
	page := `<html lang="en"><head><title>T</title></head><body><h1>H</h1><img src="/deco.svg" alt=""></body></html>`

	auditor := NewAuditor()
	require.NoError(t, auditor.AuditHTML(page))

	assert.Contains(t, auditor.Passed, "Decorative image with empty alt text")
	assert.NotContains(t, auditor.Issues, "Image missing alt attribute")
}

func TestGenerateReport(t *testing.T) {
	auditor := NewAuditor()
	require.NoError(t, auditor.AuditHTML(badPage))

	report := auditor.GenerateReport()

	assert.True(t, strings.HasPrefix(report, "# Accessibility Audit Report"))
	assert.Contains(t, report, "## Issues to Fix")
	assert.Contains(t, report, "## Warnings")
	assert.Contains(t, report, "## Recommendations")
	assert.Contains(t, report, "1. Fix all critical accessibility issues listed above")
}
