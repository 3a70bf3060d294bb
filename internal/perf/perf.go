// Package perf validates the optimization work: minified files must be
// smaller than their sources, gzip companions must exist, and the live
// endpoints should answer within budget.
package perf

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Check is one pass/fail observation with a human-readable detail line
type Check struct {
	OK     bool
	Detail string
}

// CheckMinifiedSizes verifies every stylesheet and script has a smaller
// minified sibling
func CheckMinifiedSizes(staticDir string) []Check {
	var checks []Check
	checks = append(checks, checkDir(filepath.Join(staticDir, "css"), ".css", ".min.css")...)
	checks = append(checks, checkDir(filepath.Join(staticDir, "js"), ".js", ".min.js")...)
	return checks
}

func checkDir(dir, ext, minExt string) []Check {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var checks []Check
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) || strings.HasSuffix(name, minExt) {
			continue
		}

		minPath := filepath.Join(dir, strings.TrimSuffix(name, ext)+minExt)
		minInfo, err := os.Stat(minPath)
		if err != nil {
			checks = append(checks, Check{OK: false, Detail: fmt.Sprintf("%s: No minified version found", name)})
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		reduction := (1 - float64(minInfo.Size())/float64(info.Size())) * 100
		checks = append(checks, Check{OK: true, Detail: fmt.Sprintf("%s: %.1f%% size reduction", name, reduction)})
	}
	return checks
}

// CheckGzipCompression verifies every minified file has a gzip companion
func CheckGzipCompression(staticDir string) []Check {
	var checks []Check
	_ = filepath.Walk(staticDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.Contains(info.Name(), ".min.") || strings.HasSuffix(path, ".gz") {
			return nil
		}

		gzInfo, err := os.Stat(path + ".gz")
		if err != nil {
			checks = append(checks, Check{OK: false, Detail: fmt.Sprintf("%s: No gzipped version found", info.Name())})
			return nil
		}

		ratio := (1 - float64(gzInfo.Size())/float64(info.Size())) * 100
		checks = append(checks, Check{OK: true, Detail: fmt.Sprintf("%s: %.1f%% compression", info.Name(), ratio)})
		return nil
	})
	return checks
}

// CheckAccessibilityFeatures greps the template and stylesheet for the
// accessibility affordances the audit expects
func CheckAccessibilityFeatures(templatesDir, staticDir string) []Check {
	var checks []Check

	page := readOrEmpty(filepath.Join(templatesDir, "index.html"))
	css := readOrEmpty(filepath.Join(staticDir, "css", "styles.css"))

	if page != "" {
		checks = append(checks, presenceCheck(strings.Contains(page, "skip-link"), "Skip link implemented", "Skip link missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, "aria-label"), "ARIA labels present", "ARIA labels missing"))
	}
	if css != "" {
		checks = append(checks, presenceCheck(strings.Contains(css, ":focus"), "Focus indicators implemented", "Focus indicators missing"))
	}
	if page != "" || css != "" {
		reducedMotion := strings.Contains(page, "prefers-reduced-motion") || strings.Contains(css, "prefers-reduced-motion")
		checks = append(checks, presenceCheck(reducedMotion, "Reduced motion support", "Reduced motion support missing"))
	}

	return checks
}

// CheckSEOFeatures greps the template for search-engine metadata and
// verifies robots.txt is served
func CheckSEOFeatures(templatesDir, staticDir string) []Check {
	var checks []Check

	if page := readOrEmpty(filepath.Join(templatesDir, "index.html")); page != "" {
		checks = append(checks, presenceCheck(strings.Contains(page, `meta name="description"`), "Meta description present", "Meta description missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, `property="og:`), "Open Graph tags present", "Open Graph tags missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, `name="twitter:`), "Twitter Card tags present", "Twitter Card tags missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, "application/ld+json"), "Structured data (JSON-LD) present", "Structured data missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, `rel="canonical"`), "Canonical URL present", "Canonical URL missing"))
	}

	_, err := os.Stat(filepath.Join(staticDir, "robots.txt"))
	checks = append(checks, presenceCheck(err == nil, "robots.txt file present", "robots.txt file missing"))

	return checks
}

// CheckPerformanceFeatures greps the template for resource hints and the
// stylesheet for rendering optimizations
func CheckPerformanceFeatures(templatesDir, staticDir string) []Check {
	var checks []Check

	if page := readOrEmpty(filepath.Join(templatesDir, "index.html")); page != "" {
		checks = append(checks, presenceCheck(strings.Contains(page, `rel="preconnect"`), "Preconnect hints present", "Preconnect hints missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, `rel="dns-prefetch"`), "DNS prefetch hints present", "DNS prefetch hints missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, `rel="preload"`), "Resource preloading present", "Resource preloading missing"))
		checks = append(checks, presenceCheck(strings.Contains(page, "display=swap"), "Font display optimization present", "Font display optimization missing"))
	}

	if css := readOrEmpty(filepath.Join(staticDir, "css", "styles.css")); css != "" {
		checks = append(checks, presenceCheck(strings.Contains(css, "will-change"), "GPU acceleration hints present", "GPU acceleration hints missing"))
		checks = append(checks, presenceCheck(strings.Contains(css, "contain:"), "CSS containment present", "CSS containment missing"))
	}

	return checks
}

func readOrEmpty(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(content)
}

func presenceCheck(ok bool, passDetail, failDetail string) Check {
	if ok {
		return Check{OK: true, Detail: passDetail}
	}
	return Check{OK: false, Detail: failDetail}
}

// EndpointStat summarizes latency samples for one endpoint
type EndpointStat struct {
	Path    string
	Status  int
	Samples int
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Err     error
}

// MeasureEndpoints samples each path against a running server and reports
// min/avg/max latency
func MeasureEndpoints(baseURL string, paths []string, samples int) []EndpointStat {
	client := &http.Client{Timeout: 10 * time.Second}

	var stats []EndpointStat
	for _, path := range paths {
		stat := EndpointStat{Path: path, Samples: samples}

		var total time.Duration
		for i := 0; i < samples; i++ {
			start := time.Now()
			resp, err := client.Get(baseURL + path)
			elapsed := time.Since(start)
			if err != nil {
				stat.Err = err
				break
			}
			resp.Body.Close()
			stat.Status = resp.StatusCode

			total += elapsed
			if stat.Min == 0 || elapsed < stat.Min {
				stat.Min = elapsed
			}
			if elapsed > stat.Max {
				stat.Max = elapsed
			}
		}
		if stat.Err == nil && samples > 0 {
			stat.Avg = total / time.Duration(samples)
		}
		stats = append(stats, stat)
	}
	return stats
}

// GenerateReport renders all checks and endpoint stats as Markdown
func GenerateReport(sizeChecks, gzipChecks, accessChecks, seoChecks, performanceChecks []Check, stats []EndpointStat) string {
	var report []string
	report = append(report, "# Performance Test Report\n")

	appendSection := func(title string, checks []Check) {
		if len(checks) == 0 {
			return
		}
		report = append(report, "## "+title+"\n")
		for _, check := range checks {
			marker := "PASS"
			if !check.OK {
				marker = "FAIL"
			}
			report = append(report, fmt.Sprintf("- %s: %s", marker, check.Detail))
		}
		report = append(report, "")
	}

	appendSection("File Size Optimizations", sizeChecks)
	appendSection("Gzip Compression", gzipChecks)
	appendSection("Accessibility Features", accessChecks)
	appendSection("SEO Features", seoChecks)
	appendSection("Performance Features", performanceChecks)

	if len(stats) > 0 {
		report = append(report, "## Endpoint Latency\n")
		for _, stat := range stats {
			if stat.Err != nil {
				report = append(report, fmt.Sprintf("- FAIL %s: %v", stat.Path, stat.Err))
				continue
			}
			report = append(report, fmt.Sprintf("- %s: status %d, min %s, avg %s, max %s (%d samples)",
				stat.Path, stat.Status, stat.Min, stat.Avg, stat.Max, stat.Samples))
		}
		report = append(report, "")
	}

	return strings.Join(report, "\n")
}
