// Package view renders a discovery result for human consumption.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/djcomp/djcomp/internal/discovery"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	commandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the discovered commands as an indented listing, in result
// order.
func Render(res *discovery.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Discovered management commands"))
	b.WriteString("\n\n")

	if res.Len() == 0 {
		b.WriteString(subtleStyle.Render("No commands discovered."))
		b.WriteString("\n")
		return b.String()
	}

	for _, cmd := range res.Commands() {
		b.WriteString(commandStyle.Render(cmd.Name))
		if cmd.Help != "" {
			b.WriteString("  ")
			b.WriteString(subtleStyle.Render(firstLine(cmd.Help)))
		}
		b.WriteString("\n")

		for _, arg := range cmd.Arguments {
			b.WriteString("  ")
			b.WriteString(renderArgument(arg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d command(s)", res.Len())))
	b.WriteString("\n")

	return b.String()
}

func renderArgument(arg discovery.Argument) string {
	var parts []string

	if arg.Positional {
		parts = append(parts, flagStyle.Render("<"+arg.Dest+">"))
	} else {
		parts = append(parts, flagStyle.Render(strings.Join(arg.Flags, ", ")))
	}

	if arg.HasChoices() {
		parts = append(parts, choiceStyle.Render("["+strings.Join(arg.Choices, "|")+"]"))
	} else if arg.TakesValue && !arg.Positional {
		parts = append(parts, subtleStyle.Render("<value>"))
	}

	if arg.Help != "" {
		parts = append(parts, subtleStyle.Render(firstLine(arg.Help)))
	}

	return strings.Join(parts, " ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
