package tui

import (
	"strings"

	"github.com/dirqc/dirqc/internal/domain"
)

var hintStyle = dimStyle.Italic(true)

// RenderExpected renders the directory tree and file list a conforming
// delivery directory must have for the given test type.
func RenderExpected(t domain.TestType, ascii bool) string {
	layout := domain.DescribeExpected(t)
	var b strings.Builder

	b.WriteString("  " + sectionStyle.Render("Expected Directory Structure") + "\n\n")
	b.WriteString(renderTree(ascii))
	b.WriteString("\n")

	b.WriteString("  " + sectionStyle.Render("Expected Files") + " " +
		dimStyle.Render("(type: "+string(layout.TestType)+")") + "\n\n")
	for _, f := range layout.Files {
		b.WriteString("    " + warnStyle.Render(f) + "\n")
	}
	b.WriteString("\n  " + hintStyle.Render("XXXXXX is the prefix of the base directory name (before the first hyphen).") + "\n")

	return b.String()
}

// renderTree draws the fixed required structure. The tree is two levels deep
// by contract, so the drawing walks RequiredStructure directly.
func renderTree(ascii bool) string {
	tee, elbow, pipe := "├── ", "└── ", "│   "
	if ascii {
		tee, elbow, pipe = "|-- ", "`-- ", "|   "
	}

	var b strings.Builder
	b.WriteString("    " + warnStyle.Render("XXXXXX-XXXXXXXX/") + "\n")

	top := domain.RequiredStructure
	for i, req := range top {
		last := i == len(top)-1
		branch := tee
		if last {
			branch = elbow
		}
		b.WriteString("    " + warnStyle.Render(branch+req.Name+"/") + "\n")

		indent := pipe
		if last {
			indent = "    "
		}
		for j, child := range req.Children {
			childBranch := tee
			if j == len(req.Children)-1 {
				childBranch = elbow
			}
			b.WriteString("    " + warnStyle.Render(indent+childBranch+child.Name+"/") + "\n")
		}
	}
	return b.String()
}
