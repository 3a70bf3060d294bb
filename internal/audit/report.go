package audit

import (
	"fmt"
	"strings"
)

// GenerateReport renders the audit results as a Markdown document
func (a *Auditor) GenerateReport() string {
	var report []string
	report = append(report, "# Accessibility Audit Report\n")

	total := len(a.Passed) + len(a.Warnings) + len(a.Issues)
	report = append(report,
		fmt.Sprintf("**Total checks performed:** %d", total),
		fmt.Sprintf("**Passed:** %d", len(a.Passed)),
		fmt.Sprintf("**Warnings:** %d", len(a.Warnings)),
		fmt.Sprintf("**Issues:** %d\n", len(a.Issues)),
	)

	if len(a.Passed) > 0 {
		report = append(report, "## Passed Checks\n")
		for _, item := range a.Passed {
			report = append(report, "- "+item)
		}
		report = append(report, "")
	}

	if len(a.Warnings) > 0 {
		report = append(report, "## Warnings\n")
		for _, item := range a.Warnings {
			report = append(report, "- "+item)
		}
		report = append(report, "")
	}

	if len(a.Issues) > 0 {
		report = append(report, "## Issues to Fix\n")
		for _, item := range a.Issues {
			report = append(report, "- "+item)
		}
		report = append(report, "")
	}

	report = append(report, "## Recommendations\n")
	report = append(report, "### Immediate Actions:")
	if len(a.Issues) > 0 {
		report = append(report, "1. Fix all critical accessibility issues listed above")
	}
	report = append(report,
		"2. Test with screen readers (NVDA, JAWS, VoiceOver)",
		"3. Test keyboard navigation (Tab, Enter, Space, Arrow keys)",
		"4. Verify color contrast ratios meet WCAG AA standards (4.5:1)",
		"",
		"### SEO Improvements:",
		"- Add structured data (JSON-LD) for better search visibility",
		"- Optimize images with descriptive filenames",
		"- Add Open Graph and Twitter Card meta tags",
		"- Create XML sitemap",
		"- Add robots.txt file",
		"",
		"### Performance & Accessibility:",
		"- Implement prefers-reduced-motion media query",
		"- Add focus indicators for all interactive elements",
		"- Ensure minimum touch target size (44x44px)",
		"- Test with various assistive technologies",
	)

	return strings.Join(report, "\n")
}
