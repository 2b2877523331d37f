package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pspec/internal/app"
	"pspec/internal/shared"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

var okStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("42"))

var failStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("196"))

var labelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("214"))

var valueStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("245"))

func status(ok bool, yes string, no string) string {
	if ok {
		return okStyle.Render("✓ " + yes)
	}
	return failStyle.Render("✗ " + no)
}

func renderChecks(title string, checks []app.PackageCheck) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, check := range checks {
		sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(check.Name), status(check.Installable, "satisfied", "not satisfied")))
		for _, unmet := range check.Unmet {
			sb.WriteString(valueStyle.Render("  • " + unmet))
			sb.WriteString("\n")
		}
		for _, conflict := range check.Conflicts {
			sb.WriteString(failStyle.Render("  conflicts with installed " + conflict))
			sb.WriteString("\n")
		}
		if check.UnmetWithRepo == nil || len(check.Unmet) == 0 {
			continue
		}
		if len(check.UnmetWithRepo) == 0 {
			sb.WriteString(valueStyle.Render("  all of them are available from the repository"))
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(valueStyle.Render("  still unmet with the repository: " + strings.Join(check.UnmetWithRepo, ", ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderInfo(result app.InfoResult) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Name: %s, version: %s, release: %s", result.SourceName, result.Version, result.Release)))
	sb.WriteString("\n")
	field := func(name string, value string) {
		sb.WriteString(labelStyle.Render(name+":") + " " + value + "\n")
	}
	field("Summary", result.Summary)
	field("Licenses", strings.Join(result.Licenses, ", "))
	field("Component", result.Component)
	field("Build Dependencies", strings.Join(result.BuildDependencies, " "))
	field("Last update", result.LastUpdate)
	for _, pkg := range result.Packages {
		sb.WriteString("\n")
		sb.WriteString(headerStyle.Render(fmt.Sprintf("Name: %s, version: %s, release: %s", pkg.Name, pkg.Version, pkg.Release)))
		sb.WriteString("\n")
		field("Summary", pkg.Summary)
		if pkg.Description != "" {
			field("Description", pkg.Description)
		}
		field("Licenses", strings.Join(pkg.Licenses, ", "))
		field("Component", pkg.Component)
		if len(pkg.Provides) > 0 {
			field("Provides", strings.Join(pkg.Provides, " "))
		}
		field("Dependencies", strings.Join(pkg.Dependencies, " "))
		if pkg.PackageDir != "" {
			field("Package dir", pkg.PackageDir)
		}
	}
	return sb.String()
}

func renderUpdates(result app.UpdatesResult) string {
	var sb strings.Builder
	from := result.OldRelease
	if from == "" {
		from = "not installed"
	}
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s (from release %s)", result.Package, from)))
	sb.WriteString("\n")
	types := "none"
	if len(result.Types) > 0 {
		types = strings.Join(result.Types, ", ")
	}
	sb.WriteString(labelStyle.Render("Types:") + " " + types + "\n")
	sb.WriteString(labelStyle.Render("Actions:"))
	if len(result.Actions) == 0 {
		sb.WriteString(" none\n")
		return sb.String()
	}
	sb.WriteString("\n")
	for _, name := range shared.SortedKeys(result.Actions) {
		sb.WriteString(valueStyle.Render(fmt.Sprintf("  • %s: %s", name, strings.Join(result.Actions[name], ", "))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderRemoval(result app.RemovalResult) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Removing " + result.Removed))
	sb.WriteString(" ")
	sb.WriteString(status(result.Safe, "safe", "breaks dependencies"))
	sb.WriteString("\n")
	for _, blocker := range result.Blockers {
		sb.WriteString(labelStyle.Render(blocker.Name))
		sb.WriteString("\n")
		for _, req := range blocker.Requirements {
			sb.WriteString(valueStyle.Render("  • " + req))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderSatisfies(result app.SatisfiesResult) string {
	var sb strings.Builder
	for _, entry := range result.Results {
		sb.WriteString(labelStyle.Render(entry.Label))
		sb.WriteString(" installed: ")
		sb.WriteString(status(entry.Installed, "yes", "no"))
		if entry.RepoChecked {
			sb.WriteString(" repository: ")
			sb.WriteString(status(entry.InRepo, "yes", "no"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
