// Package ui renders validation and preflight findings as terminal output.
//
// Output is styled with lipgloss on interactive terminals and degrades to
// plain text elsewhere. This package only formats; deciding to abort the
// workflow stays with the command handlers.
package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/reefctl/reef/internal/config"
	"github.com/reefctl/reef/internal/preflight"
)

// styled reports whether stdout is an interactive terminal. Function
// variable so tests can force either mode.
var styled = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func colorize(s string, style func(string) string) string {
	if !styled() {
		return s
	}
	return style(s)
}

// RenderValidation renders a validation failure. Structured
// *config.ValidationError values get one row per field with the failing
// path; anything else falls back to the plain error text.
func RenderValidation(err error) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(colorize("Configuration invalid", func(s string) string { return failStyle.Render(s) }))
	sb.WriteString("\n")

	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", crossMark, err.Error()))
		return sb.String()
	}

	sb.WriteString("  " + strings.Repeat("─", 45) + "\n")
	for _, f := range verr.Fields {
		mark := colorize(crossMark, func(s string) string { return failStyle.Render(s) })
		path := colorize(f.Path, func(s string) string { return titleStyle.Render(s) })
		sb.WriteString(fmt.Sprintf("  %s  %-38s %s\n", mark, path, f.Message))
	}
	sb.WriteString("\n")
	sb.WriteString(colorize(fmt.Sprintf("  %d field(s) need attention. Fix them and run 'reef validate' again.\n", len(verr.Fields)),
		func(s string) string { return dimStyle.Render(s) }))

	return sb.String()
}

// RenderPreflight renders a preflight result: one row per missing variable
// with remediation guidance, then any format warnings.
func RenderPreflight(res preflight.Result) string {
	var sb strings.Builder
	sb.WriteString("\n")

	if res.Valid() {
		sb.WriteString(fmt.Sprintf("  %s  Environment ready\n",
			colorize(checkMark, func(s string) string { return okStyle.Render(s) })))
	} else {
		sb.WriteString(colorize("  Missing environment variables\n", func(s string) string { return sectionStyle.Render(s) }))
		sb.WriteString("  " + strings.Repeat("─", 45) + "\n")
		for _, name := range res.Missing {
			mark := colorize(crossMark, func(s string) string { return failStyle.Render(s) })
			sb.WriteString(fmt.Sprintf("  %s  %s\n", mark, name))
			if v, ok := preflight.VarByName(name); ok {
				sb.WriteString(colorize(fmt.Sprintf("        %s\n        %s\n", v.Description, v.Example),
					func(s string) string { return dimStyle.Render(s) }))
			}
		}
	}

	if len(res.Warnings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(colorize("  Warnings\n", func(s string) string { return sectionStyle.Render(s) }))
		sb.WriteString("  " + strings.Repeat("─", 45) + "\n")
		for _, w := range res.Warnings {
			mark := colorize(warnMark, func(s string) string { return warnStyle.Render(s) })
			sb.WriteString(fmt.Sprintf("  %s  %s\n", mark, w))
		}
	}

	return sb.String()
}
