package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifyCSS(t *testing.T) {
	t.Run("Strips comments", func(t *testing.T) {
		css := "/* header styles */\nbody { color: red; }"
		assert.Equal(t, "body{color:red}", MinifyCSS(css))
	})

	t.Run("Collapses whitespace", func(t *testing.T) {
		css := "a   {\n    margin :  0 ;\n}"
		assert.Equal(t, "a{margin:0}", MinifyCSS(css))
	})

	t.Run("Removes trailing semicolons", func(t *testing.T) {
		css := ".x { padding: 1px; margin: 2px; }"
		assert.Equal(t, ".x{padding:1px;margin:2px}", MinifyCSS(css))
	})

	t.Run("Tightens combinators", func(t *testing.T) {
		css := "ul > li + li { border: 0; }"
		assert.Equal(t, "ul>li+li{border:0}", MinifyCSS(css))
	})

	t.Run("Multi-line comments", func(t *testing.T) {
		css := "/* one\ntwo\nthree */p{x:y}"
		assert.Equal(t, "p{x:y}", MinifyCSS(css))
	})
}

func TestMinifyJS(t *testing.T) {
	t.Run("Strips line comments", func(t *testing.T) {
		js := "var a = 1; // counter\nvar b = 2;"
		assert.Equal(t, "var a=1;var b=2;", MinifyJS(js))
	})

	t.Run("Preserves protocol URLs", func(t *testing.T) {
		js := `var url = "https://example.com/path";`
		minified := MinifyJS(js)
		assert.Contains(t, minified, "https://example.com/path")
	})

	t.Run("Strips block comments", func(t *testing.T) {
		js := "/* setup\n code */ run();"
		assert.Equal(t, "run();", MinifyJS(js))
	})

	t.Run("Tightens operators", func(t *testing.T) {
		js := "x = a + b;"
		assert.Equal(t, "x=a+b;", MinifyJS(js))
	})
}

func TestOptimizeDir(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "css"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "js"), 0755))

	css := "/* comment */\nbody {\n    color: red;\n}\n"
	js := "// entry point\nfunction main() {\n    return 1;\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "css", "styles.css"), []byte(css), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "js", "main.js"), []byte(js), 0644))

	results, err := OptimizeDir(staticDir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, result := range results {
		assert.Less(t, result.MinifiedSize, result.OriginalSize)
		assert.Greater(t, result.Reduction, 0.0)

		// Minified and gzipped outputs exist
		assert.FileExists(t, result.MinifiedPath)
		assert.FileExists(t, result.MinifiedPath+".gz")
	}

	t.Run("Skips already minified files", func(t *testing.T) {
		again, err := OptimizeDir(staticDir)
		require.NoError(t, err)
		assert.Len(t, again, 2)
	})
}

func TestOptimizeDirMissingDirs(t *testing.T) {
	results, err := OptimizeDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGeneratePerformanceReport(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "css", "styles.css"), []byte("body{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "css", "styles.min.css.gz"), []byte("x"), 0644))

	report, err := GeneratePerformanceReport(staticDir)
	require.NoError(t, err)

	// Gzipped files are excluded from the inventory
	assert.Contains(t, report, "- Total static files: 1")
	assert.Contains(t, report, "# Portfolio Website Performance Report")
	assert.Contains(t, report, "Core Web Vitals Targets")
}
