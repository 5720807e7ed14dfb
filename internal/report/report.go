package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"splatradar/internal/models"
)

// Build renders the daily markdown report. Pure: the same inputs always
// produce the same document, byte for byte.
func Build(repos []models.Repo, analysis, dateStr string, queries []string, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 3DGS Viewer Monitor - %s\n\n", dateStr)
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Repos scanned**: %d\n", len(repos))
	fmt.Fprintf(&b, "- **Search queries**: %s\n", strings.Join(queries, ", "))
	b.WriteString("- **Time range**: Last 24 hours\n\n")

	b.WriteString("## Analysis\n\n")
	b.WriteString(analysis)
	b.WriteString("\n\n## All Repos Found\n\n")

	if len(repos) == 0 {
		b.WriteString("*No new repos found in the last 24 hours.*\n")
	} else {
		for _, r := range repos {
			created := "Unknown"
			if r.CreatedAt != "" {
				created = r.CreatedAt
				if len(created) > 10 {
					created = created[:10]
				}
			}
			topics := "None"
			if len(r.Topics) > 0 {
				topics = strings.Join(r.Topics, ", ")
			}
			fmt.Fprintf(&b, "### [%s](%s)\n\n", r.Name, r.URL)
			fmt.Fprintf(&b, "- **Language**: %s\n", r.Language)
			fmt.Fprintf(&b, "- **Stars**: %d\n", r.Stars)
			fmt.Fprintf(&b, "- **Created**: %s\n", created)
			fmt.Fprintf(&b, "- **Topics**: %s\n", topics)
			fmt.Fprintf(&b, "- **Description**: %s\n\n", r.Description)
		}
	}

	fmt.Fprintf(&b, "\n---\n*Generated at %s by 3DGS Viewer Monitor*\n", generatedAt.UTC().Format(time.RFC3339))
	return b.String()
}

// Save writes the report to <findingsDir>/<dateStr>.md and an identical
// copy to latestPath, overwriting both. Returns the dated path.
func Save(content, dateStr, findingsDir, latestPath string) (string, error) {
	if err := os.MkdirAll(findingsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", findingsDir, err)
	}
	datedPath := filepath.Join(findingsDir, dateStr+".md")
	if err := os.WriteFile(datedPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	if err := os.WriteFile(latestPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing latest report: %w", err)
	}
	return datedPath, nil
}
