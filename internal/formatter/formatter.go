// Package formatter renders diagnostic reports for terminals and export
// boundaries.
package formatter

import (
	"fmt"

	"hwdoctor/internal/common"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	Format(report *common.Report) ([]byte, error)
}

// New returns the formatter for a format name.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json, markdown, or csv)", format)
	}
}
