package reporting

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/renamarr/renamarr/internal/config"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(report *PlanReport, cfg *config.Config) string {
	var buf bytes.Buffer

	buf.WriteString("# Relocation Plan Report\n\n")
	buf.WriteString(fmt.Sprintf("**Generated**: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	buf.WriteString(fmt.Sprintf("**Duration**: %.1f seconds\n\n", report.Summary.Duration.Seconds()))

	buf.WriteString("## Summary\n\n")
	buf.WriteString("| Category | Count | Status | Description |\n")
	buf.WriteString("|----------|-------|--------|-------------|\n")
	buf.WriteString(fmt.Sprintf("| Planned | %d | ✅ | Relocation plan computed |\n", report.Summary.PlannedCount))
	buf.WriteString(fmt.Sprintf("| Failed | %d | ❌ | Engine returned a failure |\n", report.Summary.FailedCount))
	buf.WriteString(fmt.Sprintf("| Skipped | %d | ⚠️ | No usable metadata sidecar |\n", report.Summary.SkippedCount))
	buf.WriteString("\n")

	if len(report.Planned) > 0 {
		buf.WriteString("## Planned Relocations\n\n")
		buf.WriteString("| Source | New Name | Destination | Subfolder |\n")
		buf.WriteString("|--------|----------|-------------|-----------|\n")
		for _, p := range report.Planned {
			buf.WriteString(fmt.Sprintf("| `%s` | `%s` | %s | `%s` |\n",
				escapeMarkdown(p.SourcePath),
				escapeMarkdown(p.FileName),
				escapeMarkdown(p.Destination.Name),
				escapeMarkdown(p.Subfolder),
			))
		}
		buf.WriteString("\n")
	}

	if len(report.Failed) > 0 {
		buf.WriteString("## Failures\n\n")
		buf.WriteString("| Source | Kind | Reason |\n")
		buf.WriteString("|--------|------|--------|\n")
		for _, f := range report.Failed {
			buf.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n",
				escapeMarkdown(f.SourcePath), f.Kind, escapeMarkdown(f.Reason)))
		}
		buf.WriteString("\n")
	}

	if len(report.Skipped) > 0 {
		buf.WriteString("## Skipped Files\n\n")
		buf.WriteString("| Source | Reason |\n")
		buf.WriteString("|--------|--------|\n")
		for _, s := range report.Skipped {
			buf.WriteString(fmt.Sprintf("| `%s` | %s |\n",
				escapeMarkdown(s.Path), escapeMarkdown(s.Reason)))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Configuration\n\n")
	buf.WriteString(fmt.Sprintf("- Title preference: %s\n", strings.Join(cfg.Naming.TitlePreference, ", ")))
	buf.WriteString(fmt.Sprintf("- Categories: %s / %s / %s\n",
		cfg.Routing.SeriesCategory, cfg.Routing.MoviesCategory, cfg.Routing.RestrictedCategory))
	buf.WriteString(fmt.Sprintf("- Destinations: %d configured\n", len(cfg.Destinations)))

	return buf.String()
}

func (mf *MarkdownFormatter) WriteToFile(content, reportDir string) (string, error) {
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02-15-04-05")
	filename := filepath.Join(reportDir, fmt.Sprintf("plan-report-%s.md", timestamp))

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "`", "\\`")
	return s
}
