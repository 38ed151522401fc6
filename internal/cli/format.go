package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintSuccess prints a success message with a checkmark.
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message.
func PrintInfo(msg string) {
	fmt.Println(msg)
}

// PrintHeader prints a section header.
func PrintHeader(title string) {
	_, _ = headerColor.Printf("%s\n", title)
}

// PrintItem prints a list item with an optional dimmed annotation.
func PrintItem(text, annotation string) {
	fmt.Printf("  • %s", text)
	if annotation != "" {
		_, _ = dimColor.Printf("  (%s)", annotation)
	}
	fmt.Println()
}
