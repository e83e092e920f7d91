package generate

import (
	"regexp"
	"strings"

	"github.com/forge-labs/forge/internal/manifest"
)

const (
	tailwindImport    = "import tailwindcss from '@tailwindcss/vite'"
	tailwindPlugin    = "tailwindcss()"
	tailwindCSSImport = `@import "tailwindcss";`
)

var (
	pluginsKey   = regexp.MustCompile(`plugins:\s*\[`)
	defineConfig = regexp.MustCompile(`defineConfig\s*\(\s*\{`)
)

func vitePatches(path string) []manifest.Patch {
	return []manifest.Patch{
		{
			Name:    "import tailwind plugin",
			Phase:   manifest.PhaseStyling,
			Path:    path,
			Applied: manifest.Contains("@tailwindcss/vite"),
			Rewrite: manifest.Prepend(tailwindImport + "\n"),
		},
		{
			Name:     "register tailwind plugin",
			Phase:    manifest.PhaseStyling,
			Path:     path,
			Anchor:   "plugins list or defineConfig({",
			Anchored: hasPluginAnchor,
			Applied:  manifest.Contains(tailwindPlugin),
			Rewrite:  addVitePlugin,
		},
	}
}

// addVitePlugin appends the tailwind plugin to the plugins list, or adds a
// plugins key when the config has none.
func addVitePlugin(content string) string {
	if start, end, ok := pluginsBounds(content); ok {
		inner := content[start:end]
		body := strings.TrimRight(inner, " \t\r\n")
		tail := inner[len(body):]
		body = strings.TrimSuffix(body, ",")

		var list string
		if strings.TrimSpace(body) == "" {
			list = tailwindPlugin
		} else {
			list = body + ", " + tailwindPlugin + tail
		}
		return content[:start] + list + content[end:]
	}
	if loc := defineConfig.FindStringIndex(content); loc != nil {
		return content[:loc[1]] + " plugins: [" + tailwindPlugin + "]," + content[loc[1]:]
	}
	return content
}

func hasPluginAnchor(content string) bool {
	_, _, ok := pluginsBounds(content)
	return ok || defineConfig.MatchString(content)
}

// pluginsBounds returns the span between the brackets of the first plugins
// list. Brackets inside nested arrays and string literals are skipped.
func pluginsBounds(content string) (start, end int, ok bool) {
	loc := pluginsKey.FindStringIndex(content)
	if loc == nil {
		return 0, 0, false
	}
	start = loc[1]
	depth := 1
	for i := start; i < len(content); i++ {
		switch c := content[i]; c {
		case '\'', '"', '`':
			j := i + 1
			for j < len(content) && content[j] != c {
				if content[j] == '\\' {
					j++
				}
				j++
			}
			i = j
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return start, i, true
			}
		}
	}
	return 0, 0, false
}

func stylesheetPatch(path string) manifest.Patch {
	return manifest.Patch{
		Name:    "import tailwind styles",
		Phase:   manifest.PhaseStyling,
		Path:    path,
		Applied: manifest.Contains(tailwindCSSImport),
		Rewrite: manifest.Prepend(tailwindCSSImport + "\n\n"),
	}
}
