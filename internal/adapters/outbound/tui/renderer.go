package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dirqc/dirqc/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	passTagStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	failTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// symbols holds the status markers; ASCII mode avoids Unicode for terminals
// and log sinks that cannot render it.
type symbols struct {
	ok, missing, issue string
}

func symbolsFor(ascii bool) symbols {
	if ascii {
		return symbols{ok: "[ok]", missing: "[x]", issue: "[!]"}
	}
	return symbols{ok: "✓", missing: "✗", issue: "⚠"}
}

// RenderResult renders a ValidationResult as a styled report string.
func RenderResult(result *domain.ValidationResult, ascii bool) string {
	sym := symbolsFor(ascii)
	var b strings.Builder

	title := headerStyle.Render("dirqc")
	subtitle := dimStyle.Render("Directory Structure & File QC Report")
	meta := fmt.Sprintf("%s  %s",
		titleStyle.Render(result.BasePath),
		dimStyle.Render(fmt.Sprintf("type: %s", result.TestType)),
	)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + meta))
	b.WriteString("\n\n")

	b.WriteString("  " + sectionStyle.Render("Directory Structure") + "\n")
	renderOutcomeSection(&b, "Existing Directories", result.ExistingDirs, passStyle, sym.ok)
	renderOutcomeSection(&b, "Missing Directories", result.MissingDirs, failStyle, sym.missing)

	if len(result.Files) > 0 {
		b.WriteString("\n  " + sectionStyle.Render("File Checks") + "\n")
		renderOutcomeSection(&b, "Existing Files", result.ExistingFiles, passStyle, sym.ok)
		renderOutcomeSection(&b, "Missing Files", result.MissingFiles, failStyle, sym.missing)
		renderOutcomeSection(&b, "File Issues", result.FileIssues, warnStyle, sym.issue)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	if result.Passed {
		b.WriteString("  " + passTagStyle.Render("QC PASSED:") +
			" All required directories and files exist.\n")
	} else {
		b.WriteString("  " + failTagStyle.Render("QC FAILED:") +
			" " + result.FailureSummary() + "\n")
	}

	return b.String()
}

func renderOutcomeSection(b *strings.Builder, title string, outcomes []domain.CheckOutcome, style lipgloss.Style, symbol string) {
	if len(outcomes) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		titleStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", len(outcomes))),
	))

	for _, o := range outcomes {
		line := fmt.Sprintf("    %s %s", style.Render(symbol), o.Path)
		if o.Detail != "" {
			line += "  " + faintStyle.Render("("+o.Detail+")")
		}
		b.WriteString(line + "\n")
	}
}
