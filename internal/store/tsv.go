// Package store serializes report tables to TSV for piping into other
// tools.
package store

import (
	"fmt"
	"io"
	"strings"

	"github.com/jdgunter/gaia-project-scraper/internal/report"
)

var cellSanitizer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// MarshalTable serializes a table as TSV: one header line, one line per
// row. Tabs and newlines inside cells are flattened to spaces so the row
// structure survives.
func MarshalTable(t report.Table) string {
	var sb strings.Builder
	writeLine(&sb, t.Headers)
	for _, row := range t.Rows {
		writeLine(&sb, row)
	}
	return sb.String()
}

// WriteTable writes a table to w as TSV.
func WriteTable(w io.Writer, t report.Table) error {
	if _, err := io.WriteString(w, MarshalTable(t)); err != nil {
		return fmt.Errorf("write table %q: %w", t.Title, err)
	}
	return nil
}

func writeLine(sb *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(cellSanitizer.Replace(c))
	}
	sb.WriteByte('\n')
}
