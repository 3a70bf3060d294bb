// Package audit statically scans rendered HTML for accessibility and SEO
// problems. Each check is independent; the auditor accumulates passed
// checks, warnings, and issues across every file it visits.
package audit

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type Auditor struct {
	Passed   []string
	Warnings []string
	Issues   []string
}

func NewAuditor() *Auditor {
	return &Auditor{}
}

// AuditFile parses an HTML file and runs every check against it
func (a *Auditor) AuditFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return a.AuditHTML(string(content))
}

// AuditHTML runs every check against an HTML document
func (a *Auditor) AuditHTML(content string) error {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return err
	}

	a.checkDocumentStructure(doc)
	a.checkHeadingHierarchy(doc)
	a.checkImages(doc)
	a.checkForms(doc)
	a.checkLinks(doc)
	a.checkARIA(doc)
	a.checkColorContrast(doc)
	a.checkKeyboardNavigation(doc)

	return nil
}

func (a *Auditor) pass(format string, args ...interface{}) {
	a.Passed = append(a.Passed, fmt.Sprintf(format, args...))
}

func (a *Auditor) warn(format string, args ...interface{}) {
	a.Warnings = append(a.Warnings, fmt.Sprintf(format, args...))
}

func (a *Auditor) issue(format string, args ...interface{}) {
	a.Issues = append(a.Issues, fmt.Sprintf(format, args...))
}

// checkDocumentStructure checks lang, title, meta description and viewport
func (a *Auditor) checkDocumentStructure(doc *html.Node) {
	if htmlTag := findFirst(doc, "html"); htmlTag != nil && attr(htmlTag, "lang") != "" {
		a.pass("HTML lang attribute present")
	} else {
		a.issue("Missing lang attribute on <html> tag")
	}

	if title := findFirst(doc, "title"); title != nil && strings.TrimSpace(text(title)) != "" {
		a.pass("Page title present")
	} else {
		a.issue("Missing or empty page title")
	}

	if meta := findMeta(doc, "description"); meta != nil && attr(meta, "content") != "" {
		a.pass("Meta description present")
	} else {
		a.warn("Missing meta description")
	}

	if findMeta(doc, "viewport") != nil {
		a.pass("Viewport meta tag present")
	} else {
		a.issue("Missing viewport meta tag")
	}
}

// checkHeadingHierarchy verifies there is exactly one h1 and no level skips
func (a *Auditor) checkHeadingHierarchy(doc *html.Node) {
	headings := findAll(doc, "h1", "h2", "h3", "h4", "h5", "h6")
	if len(headings) == 0 {
		a.warn("No headings found")
		return
	}

	h1Count := len(findAll(doc, "h1"))
	switch {
	case h1Count == 1:
		a.pass("Exactly one H1 tag found")
	case h1Count == 0:
		a.issue("No H1 tag found")
	default:
		a.issue("Multiple H1 tags found (%d)", h1Count)
	}

	levels := make([]int, 0, len(headings))
	for _, h := range headings {
		level, _ := strconv.Atoi(h.Data[1:])
		levels = append(levels, level)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] > levels[i-1]+1 {
			a.warn("Heading hierarchy skip detected: h%d to h%d", levels[i-1], levels[i])
		}
	}
}

// checkImages verifies alt attributes and reports lazy loading
func (a *Auditor) checkImages(doc *html.Node) {
	lazy := 0
	for _, img := range findAll(doc, "img") {
		alt, ok := lookupAttr(img, "alt")
		switch {
		case !ok:
			a.issue("Image missing alt attribute")
		case alt == "":
			a.pass("Decorative image with empty alt text")
		default:
			a.pass("Image has descriptive alt text")
		}

		if attr(img, "loading") == "lazy" {
			lazy++
		}
	}
	if lazy > 0 {
		a.pass("%d images use lazy loading", lazy)
	}
}

// checkForms verifies every visible input has an associated label
func (a *Auditor) checkForms(doc *html.Node) {
	for _, form := range findAll(doc, "form") {
		inputs := findAll(form, "input", "textarea", "select")
		for _, input := range inputs {
			inputType := attr(input, "type")
			if inputType == "hidden" || inputType == "submit" || inputType == "button" {
				continue
			}

			id := attr(input, "id")
			if id == "" {
				a.issue("Form input missing id attribute")
				continue
			}
			if findLabelFor(doc, id) != nil {
				a.pass("Form input has associated label")
			} else {
				a.issue("Form input missing associated label")
			}
		}

		if len(inputs) > 5 && len(findAll(form, "fieldset")) == 0 {
			a.warn("Complex form might benefit from fieldsets")
		}
	}
}

// checkLinks verifies link text quality and external link rel attributes
func (a *Auditor) checkLinks(doc *html.Node) {
	for _, link := range findAll(doc, "a") {
		linkText := strings.ToLower(strings.TrimSpace(text(link)))
		if linkText == "" || linkText == "click here" || linkText == "read more" || linkText == "more" {
			a.warn("Link has non-descriptive text")
		}

		href := attr(link, "href")
		if strings.HasPrefix(href, "http") && attr(link, "target") == "_blank" {
			rel := attr(link, "rel")
			if strings.Contains(rel, "noopener") || strings.Contains(rel, "noreferrer") {
				a.pass("External link has security attributes")
			} else {
				a.warn("External link missing security attributes")
			}
		}
	}
}

// checkARIA reports ARIA label, role and hidden usage
func (a *Auditor) checkARIA(doc *html.Node) {
	if n := countWithAttr(doc, "aria-label"); n > 0 {
		a.pass("%d elements have ARIA labels", n)
	}
	if n := countWithAttr(doc, "role"); n > 0 {
		a.pass("%d elements have ARIA roles", n)
	}

	hidden := 0
	walk(doc, func(n *html.Node) {
		if attr(n, "aria-hidden") == "true" {
			hidden++
		}
	})
	if hidden > 0 {
		a.pass("%d decorative elements are hidden from screen readers", hidden)
	}
}

// checkColorContrast is a surface-level scan of inline stylesheets
func (a *Auditor) checkColorContrast(doc *html.Node) {
	var css strings.Builder
	for _, style := range findAll(doc, "style") {
		css.WriteString(text(style))
		css.WriteString(" ")
	}
	content := css.String()

	if strings.Contains(content, "color:") && strings.Contains(content, "background") {
		a.pass("Color and background properties found (manual contrast check needed)")
	}
	if strings.Contains(content, "@media (prefers-color-scheme: dark)") {
		a.pass("Dark mode support detected")
	}
}

// checkKeyboardNavigation checks tabindex misuse and skip links
func (a *Auditor) checkKeyboardNavigation(doc *html.Node) {
	walk(doc, func(n *html.Node) {
		if tabindex, ok := lookupAttr(n, "tabindex"); ok {
			if value, err := strconv.Atoi(tabindex); err == nil && value > 0 {
				a.warn("Positive tabindex found - may disrupt tab order")
			}
		}
	})

	skipLinks := 0
	for _, link := range findAll(doc, "a") {
		if strings.HasPrefix(attr(link, "href"), "#") {
			skipLinks++
		}
	}
	if skipLinks > 0 {
		a.pass("Skip links found for keyboard navigation")
	}
}
