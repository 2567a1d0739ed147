package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Stratigraph/esal/pkg/config"
	"github.com/Stratigraph/esal/pkg/sequence"
)

// Styles (Swiss minimal)
var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8800")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AACC"))
)

// printEvents prints a sequence one event per line, honoring the output
// limit and color settings.
func printEvents(events sequence.Sequence, out config.OutputConfig) {
	limit := out.Limit
	for i, e := range events {
		if limit > 0 && i >= limit {
			render(mutedStyle, out.Color, fmt.Sprintf("... %d more", len(events)-limit))
			fmt.Println()
			return
		}
		if !out.Color {
			fmt.Println(e)
			continue
		}
		fields := e.Fields()
		names := e.Header().Names()
		line := ""
		for j, v := range fields {
			if v.IsNil() {
				continue
			}
			if line != "" {
				line += "  "
			}
			line += fieldStyle.Render(names[j]+"=") + v.String()
		}
		if line == "" {
			line = mutedStyle.Render("(empty event)")
		}
		fmt.Println(line)
	}
}

// printSummary prints the event count and time span.
func printSummary(events sequence.Sequence, out config.OutputConfig) {
	summary := fmt.Sprintf("%d events", events.Len())
	if first, last, ok := events.Span(); ok {
		summary += fmt.Sprintf("  %s .. %s", first, last)
	}
	render(mutedStyle, out.Color, summary)
	fmt.Println()
}

// printRefresh announces a watch-triggered refresh.
func printRefresh(path string) {
	fmt.Println(accentStyle.Render("▸ " + path))
}

func render(style lipgloss.Style, color bool, s string) {
	if color {
		fmt.Print(style.Render(s))
	} else {
		fmt.Print(s)
	}
}
