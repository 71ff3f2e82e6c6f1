package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"hwdoctor/internal/common"
)

// csvFormatter flattens the report into typed CSV records.
type csvFormatter struct{}

// NewCSV creates a new CSV formatter.
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *common.Report) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"type", "key", "value", "detail"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	if report.Logs != nil {
		for _, c := range report.Logs.Clusters {
			record := []string{"cluster", c.Template, strconv.Itoa(c.Count), ""}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	if report.Drivers != nil {
		record := []string{"module_count", strconv.Itoa(report.Drivers.ModuleCount), "", ""}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
		for _, e := range report.Drivers.Entries {
			record := []string{"driver", e.Category, e.Driver, e.Source}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	if report.Scan != nil {
		for _, d := range report.Scan.Devices {
			record := []string{"device", d.Class + "/" + d.Name, d.Driver, ""}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return b.Bytes(), nil
}
