package extractor

import (
	"strings"
)

// Normalize enforces the structural invariants on a recovered table set:
// headers are trimmed and never empty, cells are trimmed, and rows whose
// every cell trims to empty are dropped. It does not reconcile header-count
// against row-width mismatches; Flatten handles (and reports) those.
func Normalize(set *TableSet) {
	for i := range set.Tables {
		table := &set.Tables[i]

		headers := make([]string, 0, len(table.Headers))

		for _, header := range table.Headers {
			if val := strings.TrimSpace(header); val != "" {
				headers = append(headers, val)
			}
		}

		table.Headers = headers

		rows := make([][]string, 0, len(table.Data))

		for _, row := range table.Data {
			cells := make([]string, len(row))

			empty := true

			for j, cell := range row {
				cells[j] = strings.TrimSpace(cell)

				if cells[j] != "" {
					empty = false
				}
			}

			if !empty {
				rows = append(rows, cells)
			}
		}

		table.Data = rows
	}
}
