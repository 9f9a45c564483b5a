// Package formatter is the rendering surface the service layer prints
// through. It narrows pkg/output to the calls the renderers need and owns
// the inline-emphasis color.
package formatter

import (
	"github.com/fatih/color"
	"github.com/focalhq/cli/pkg/output"
)

// Bold highlights usernames and section titles in rendered text
var Bold = color.New(color.Bold)

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// PrintTable prints rows as a table in the configured output format
func PrintTable(headers []string, rows [][]string) {
	output.PrintList("", rows, headers)
}
