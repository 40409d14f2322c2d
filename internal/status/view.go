package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	sections := []string{
		renderHeader(data),
		renderSettings(data),
		renderWordLists(data),
	}
	if data.ManifestPath != "" {
		sections = append(sections, renderRemote(data))
	}
	return strings.Join(sections, "\n\n")
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	if data.GitCommit != "" && data.GitCommit != "unknown" {
		b.WriteString(subtleStyle.Render(" (" + data.GitCommit + ")"))
	}
	b.WriteString("\n")

	configPath := data.ConfigPath
	if configPath == "" {
		configPath = "built-in defaults"
	}
	b.WriteString(titleStyle.Render("📝 Config: ") + valueStyle.Render(configPath))
	return b.String()
}

func renderSettings(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Settings:") + "\n")

	b.WriteString("   " + keyStyle.Render("Log level: ") + valueStyle.Render(data.LogLevel) + "\n")

	latexPath := subtleStyle.Render("not set")
	if data.LatexPath != "" {
		latexPath = valueStyle.Render(data.LatexPath)
	}
	b.WriteString("   " + keyStyle.Render("LaTeX path: ") + latexPath + "\n")

	if data.AutoComplete {
		b.WriteString("   " + keyStyle.Render("Autocomplete: ") +
			successStyle.Render("✓ enabled") +
			subtleStyle.Render(fmt.Sprintf(" (delay %s)", data.AutoCompleteDelay)))
	} else {
		b.WriteString("   " + keyStyle.Render("Autocomplete: ") + errorStyle.Render("✗ disabled"))
	}

	if len(data.WordListDirs) > 0 {
		b.WriteString("\n   " + keyStyle.Render("Extra directories: ") + subtleStyle.Render(strings.Join(data.WordListDirs, ", ")))
	}
	return b.String()
}

func renderWordLists(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📚 Word lists:") + "\n")

	if len(data.Sources) == 0 {
		b.WriteString("   " + subtleStyle.Render("No word lists configured"))
		return b.String()
	}

	for i, src := range data.Sources {
		if src.Error != "" {
			b.WriteString(fmt.Sprintf("   %d. %s %s %s\n",
				i+1,
				valueStyle.Render(src.Name),
				errorStyle.Render("✗"),
				subtleStyle.Render(fmt.Sprintf("(%d kept) %s", src.Entries, src.Error))))
			continue
		}

		line := fmt.Sprintf("   %d. %s %s %s",
			i+1,
			valueStyle.Render(src.Name),
			successStyle.Render("✓"),
			subtleStyle.Render(fmt.Sprintf("%d entries", src.Entries)))
		if src.Skipped > 0 {
			line += subtleStyle.Render(fmt.Sprintf(", %d skipped", src.Skipped))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("   " + keyStyle.Render("Total: ") +
		valueStyle.Render(fmt.Sprintf("%d", data.TotalEntries)) +
		subtleStyle.Render(fmt.Sprintf(" in %.3fms", float64(data.LoadDuration.Microseconds())/1000.0)))
	return b.String()
}

func renderRemote(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🌐 Remote word lists:") + "\n")
	b.WriteString("   " + keyStyle.Render("Manifest: ") + subtleStyle.Render(data.ManifestPath) + "\n")
	b.WriteString("   " + keyStyle.Render("Cache: ") + subtleStyle.Render(data.CacheDir))

	for _, list := range data.CachedLists {
		b.WriteString(fmt.Sprintf("\n      %s (%s, fetched %s)",
			valueStyle.Render(list.Name),
			subtleStyle.Render(formatBytes(list.Size)),
			subtleStyle.Render(list.Fetched.Format("2006-01-02 15:04:05"))))
	}
	return b.String()
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
