// Package ui provides theme and color support for terminal output.
// It keeps ANSI escape codes and lipgloss styles in one place so the
// presentation layer never hardcodes colors.
package ui
