package perf

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCheckMinifiedSizes(t *testing.T) {
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(staticDir, "css", "styles.css"), "body {\n    color: red;\n}\n")
	writeFile(t, filepath.Join(staticDir, "css", "styles.min.css"), "body{color:red}")
	writeFile(t, filepath.Join(staticDir, "js", "main.js"), "function main() { return 1; }\n")

	checks := CheckMinifiedSizes(staticDir)
	require.Len(t, checks, 2)

	byOK := map[bool]string{}
	for _, check := range checks {
		byOK[check.OK] = check.Detail
	}
	assert.Contains(t, byOK[true], "styles.css")
	assert.Contains(t, byOK[true], "size reduction")
	assert.Contains(t, byOK[false], "main.js")
	assert.Contains(t, byOK[false], "No minified version found")
}

func TestCheckGzipCompression(t *testing.T) {
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(staticDir, "css", "styles.min.css"), "body{color:red}")
	writeFile(t, filepath.Join(staticDir, "css", "styles.min.css.gz"), "gz")
	writeFile(t, filepath.Join(staticDir, "js", "main.min.js"), "function main(){}")

	checks := CheckGzipCompression(staticDir)
	require.Len(t, checks, 2)

	var passed, failed int
	for _, check := range checks {
		if check.OK {
			passed++
		} else {
			failed++
			assert.Contains(t, check.Detail, "main.min.js")
		}
	}
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
}

func TestCheckAccessibilityFeatures(t *testing.T) {
	templatesDir := t.TempDir()
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(templatesDir, "index.html"),
		`<a class="skip-link" href="#main">Skip</a><nav aria-label="Main"></nav>`)
	writeFile(t, filepath.Join(staticDir, "css", "styles.css"),
		"a:focus { outline: 2px solid; }\n@media (prefers-reduced-motion: reduce) { * { animation: none; } }")

	checks := CheckAccessibilityFeatures(templatesDir, staticDir)
	require.Len(t, checks, 4)
	for _, check := range checks {
		assert.True(t, check.OK, check.Detail)
	}
}

func TestCheckAccessibilityFeaturesReducedMotionMissing(t *testing.T) {
	templatesDir := t.TempDir()
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(templatesDir, "index.html"),
		`<a class="skip-link" href="#main">Skip</a><nav aria-label="Main"></nav>`)
	writeFile(t, filepath.Join(staticDir, "css", "styles.css"), "a:focus { outline: 2px solid; }")

	checks := CheckAccessibilityFeatures(templatesDir, staticDir)
	require.Len(t, checks, 4)

	last := checks[len(checks)-1]
	assert.False(t, last.OK)
	assert.Equal(t, "Reduced motion support missing", last.Detail)
}

func TestCheckSEOFeatures(t *testing.T) {
	templatesDir := t.TempDir()
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(templatesDir, "index.html"), `<head>
<meta name="description" content="Portfolio">
<meta property="og:title" content="Portfolio">
<meta name="twitter:card" content="summary">
<script type="application/ld+json">{}</script>
<link rel="canonical" href="https://example.com/">
</head>`)
	writeFile(t, filepath.Join(staticDir, "robots.txt"), "User-agent: *\n")

	checks := CheckSEOFeatures(templatesDir, staticDir)
	require.Len(t, checks, 6)
	for _, check := range checks {
		assert.True(t, check.OK, check.Detail)
	}
}

func TestCheckSEOFeaturesMissing(t *testing.T) {
	templatesDir := t.TempDir()
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(templatesDir, "index.html"), `<head><title>Bare</title></head>`)

	checks := CheckSEOFeatures(templatesDir, staticDir)
	require.Len(t, checks, 6)

	var details []string
	for _, check := range checks {
		assert.False(t, check.OK, check.Detail)
		details = append(details, check.Detail)
	}
	assert.Contains(t, details, "Meta description missing")
	assert.Contains(t, details, "Open Graph tags missing")
	assert.Contains(t, details, "Twitter Card tags missing")
	assert.Contains(t, details, "Structured data missing")
	assert.Contains(t, details, "Canonical URL missing")
	assert.Contains(t, details, "robots.txt file missing")
}

func TestCheckPerformanceFeatures(t *testing.T) {
	templatesDir := t.TempDir()
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(templatesDir, "index.html"), `<head>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="dns-prefetch" href="https://fonts.googleapis.com">
<link rel="preload" href="/static/css/styles.css" as="style">
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter&display=swap">
</head>`)
	writeFile(t, filepath.Join(staticDir, "css", "styles.css"),
		".card { will-change: transform; }\n.grid { contain: layout; }")

	checks := CheckPerformanceFeatures(templatesDir, staticDir)
	require.Len(t, checks, 6)
	for _, check := range checks {
		assert.True(t, check.OK, check.Detail)
	}
}

func TestCheckPerformanceFeaturesMissing(t *testing.T) {
	templatesDir := t.TempDir()
	staticDir := t.TempDir()
	writeFile(t, filepath.Join(templatesDir, "index.html"), `<head><title>Bare</title></head>`)
	writeFile(t, filepath.Join(staticDir, "css", "styles.css"), "body { margin: 0; }")

	checks := CheckPerformanceFeatures(templatesDir, staticDir)
	require.Len(t, checks, 6)

	var details []string
	for _, check := range checks {
		assert.False(t, check.OK, check.Detail)
		details = append(details, check.Detail)
	}
	assert.Contains(t, details, "Preconnect hints missing")
	assert.Contains(t, details, "Font display optimization missing")
	assert.Contains(t, details, "GPU acceleration hints missing")
	assert.Contains(t, details, "CSS containment missing")
}

func TestMeasureEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	stats := MeasureEndpoints(server.URL, []string{"/health"}, 3)
	require.Len(t, stats, 1)

	stat := stats[0]
	require.NoError(t, stat.Err)
	assert.Equal(t, http.StatusOK, stat.Status)
	assert.Equal(t, 3, stat.Samples)
	assert.LessOrEqual(t, stat.Min, stat.Avg)
	assert.LessOrEqual(t, stat.Avg, stat.Max)
}

func TestGenerateReport(t *testing.T) {
	sizeChecks := []Check{{OK: true, Detail: "styles.css: 40.0% size reduction"}}
	gzipChecks := []Check{{OK: false, Detail: "main.min.js: No gzipped version found"}}
	seoChecks := []Check{{OK: true, Detail: "Meta description present"}}
	performanceChecks := []Check{{OK: false, Detail: "Preconnect hints missing"}}
	stats := []EndpointStat{{Path: "/api/projects", Status: 200, Samples: 5}}

	report := GenerateReport(sizeChecks, gzipChecks, nil, seoChecks, performanceChecks, stats)

	assert.Contains(t, report, "# Performance Test Report")
	assert.Contains(t, report, "- PASS: styles.css: 40.0% size reduction")
	assert.Contains(t, report, "- FAIL: main.min.js: No gzipped version found")
	assert.Contains(t, report, "## SEO Features")
	assert.Contains(t, report, "- PASS: Meta description present")
	assert.Contains(t, report, "## Performance Features")
	assert.Contains(t, report, "- FAIL: Preconnect hints missing")
	assert.Contains(t, report, "## Endpoint Latency")
	assert.Contains(t, report, "/api/projects")
}
