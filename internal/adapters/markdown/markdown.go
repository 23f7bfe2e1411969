// Package markdown renders command output as Markdown for generated documentation blocks.
package markdown

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"go.trai.ch/pinhooks/internal/core/domain"
)

// GeneratedMarker precedes generated content so readers know not to edit it by hand.
const GeneratedMarker = "<!-- THE FOLLOWING CODE IS GENERATED BY COG VIA PRE-COMMIT. ANY MANUAL CHANGES WILL BE LOST. -->"

// ParseMakeHelp reads the help text printed by a project's default make target.
// Each non-blank line holds a target name, a space and its description.
func ParseMakeHelp(text string) []domain.MakeTarget {
	var targets []domain.MakeTarget
	for _, line := range strings.Split(dedent(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, description, _ := strings.Cut(line, " ")
		targets = append(targets, domain.MakeTarget{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(description),
		})
	}
	return targets
}

// TargetsTable renders targets as a Markdown table preceded by GeneratedMarker.
func TargetsTable(targets []domain.MakeTarget) (string, error) {
	if len(targets) == 0 {
		return "", domain.ErrNoMakeTargets
	}

	nameWidth, descWidth := 0, 0
	for _, t := range targets {
		nameWidth = max(nameWidth, runewidth.StringWidth(t.Name))
		descWidth = max(descWidth, runewidth.StringWidth(t.Description))
	}
	// Names are wrapped in backticks.
	nameWidth += 2

	var b strings.Builder
	b.WriteString(GeneratedMarker + "\n")
	writeRow(&b, "Target", nameWidth, "Description", descWidth)
	b.WriteString("|" + strings.Repeat("-", nameWidth+2) + "|" + strings.Repeat("-", descWidth+2) + "|\n")
	for _, t := range targets {
		writeRow(&b, "`"+t.Name+"`", nameWidth, t.Description, descWidth)
	}
	return b.String(), nil
}

func writeRow(b *strings.Builder, first string, firstWidth int, second string, secondWidth int) {
	b.WriteString("| ")
	b.WriteString(runewidth.FillRight(first, firstWidth))
	b.WriteString(" | ")
	b.WriteString(runewidth.FillRight(second, secondWidth))
	b.WriteString(" |\n")
}

// FencedBlock wraps text in a fenced code block tagged with language.
// Surrounding blank space is trimmed and trailing whitespace is removed from every line.
func FencedBlock(language, text string) string {
	block := "```" + language + "\n" + strings.TrimSpace(text) + "\n```"

	var b strings.Builder
	for _, line := range strings.Split(block, "\n") {
		b.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
		b.WriteString("\n")
	}
	return b.String()
}

// dedent removes the whitespace prefix shared by all non-blank lines.
// Blank lines are emptied.
func dedent(text string) string {
	lines := strings.Split(text, "\n")

	prefix := ""
	found := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
		if !found {
			prefix, found = indent, true
			continue
		}
		prefix = commonPrefix(prefix, indent)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

