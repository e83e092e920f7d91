package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/forge-labs/forge/internal/config"
)

var titleCase = cases.Title(language.English)

var databaseLabels = map[string]string{
	config.DBPostgres: "PostgreSQL",
	config.DBMySQL:    "MySQL",
	config.DBMongo:    "MongoDB",
}

func languageLabel(cfg config.Configuration) string {
	if cfg.TypeScript() {
		return "TypeScript"
	}
	return "JavaScript"
}

func frontendLabel(cfg config.Configuration) string {
	if cfg.MobileFrontend() {
		return "Expo (React Native) + " + languageLabel(cfg)
	}
	return titleCase.String(cfg.Frontend) + " (Vite) + " + languageLabel(cfg)
}

func backendLabel(cfg config.Configuration) string {
	return titleCase.String(cfg.Backend) + " + " + languageLabel(cfg)
}

func databaseLines(b *strings.Builder, cfg config.Configuration) {
	if !cfg.HasDatabase() {
		return
	}
	client := "orm"
	if cfg.Database == config.DBMongo {
		client = "odm"
	}
	b.WriteString("- **Database:**\n")
	fmt.Fprintf(b, "  - `type`: %s\n", databaseLabels[cfg.Database])
	fmt.Fprintf(b, "  - `%s`: %s\n", client, cfg.ORM)
	b.WriteString("  - `dev`: Docker Compose setup included\n")
}

// Plan describes what is about to be generated, as markdown.
func Plan(cfg config.Configuration) string {
	var b strings.Builder
	switch cfg.Architecture {
	case config.ArchFullstack:
		b.WriteString("## Ready to forge your full-stack project\n\n")
		fmt.Fprintf(&b, "- **Structure:** Monorepo (%s workspaces)\n", cfg.PackageManager)
		b.WriteString("- **Apps:**\n")
		if cfg.MobileFrontend() {
			fmt.Fprintf(&b, "  - `mobile`: %s\n", frontendLabel(cfg))
		} else {
			fmt.Fprintf(&b, "  - `web`: %s\n", frontendLabel(cfg))
		}
		fmt.Fprintf(&b, "  - `api`: %s\n", backendLabel(cfg))
		databaseLines(&b, cfg)
	case config.ArchFrontend:
		b.WriteString("## Ready to forge your frontend project\n\n")
		fmt.Fprintf(&b, "- **Framework:** %s\n", frontendLabel(cfg))
		if !cfg.MobileFrontend() {
			fmt.Fprintf(&b, "- **Styling:** %s\n", cfg.CSS)
		}
	case config.ArchMobile:
		b.WriteString("## Ready to forge your mobile project\n\n")
		fmt.Fprintf(&b, "- **Framework:** Expo (React Native) + %s\n", languageLabel(cfg))
	default:
		b.WriteString("## Ready to forge your backend project\n\n")
		fmt.Fprintf(&b, "- **Server:** %s\n", backendLabel(cfg))
		databaseLines(&b, cfg)
	}
	fmt.Fprintf(&b, "- **Package manager:** %s\n", cfg.PackageManager)
	fmt.Fprintf(&b, "- **Location:** `%s`\n", cfg.ProjectRoot())
	if cfg.DryRun {
		b.WriteString("\n_Dry run: no files will be written._\n")
	}
	return b.String()
}
