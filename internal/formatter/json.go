package formatter

import (
	"encoding/json"

	"hwdoctor/internal/common"
)

// jsonFormatter emits the report as indented JSON.
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter.
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(report *common.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
