package extractor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var braceSpan = regexp.MustCompile(`\{[\s\S]*\}`)

// ParseResponse recovers a table set from raw model output. The ladder is
// deliberately a bounded heuristic: strip markdown fencing, try a direct
// parse, try the first brace-delimited span, and finally degrade to an empty
// set. It never fails; a response with no usable JSON means "no tables
// found", not an error.
func ParseResponse(text string) *TableSet {
	content := strings.TrimSpace(text)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	if set, ok := decodeTables(content); ok {
		return set
	}

	if span := braceSpan.FindString(content); span != "" {
		if set, ok := decodeTables(span); ok {
			return set
		}

		slog.Warn("failed to parse extracted JSON span", "len", len(span))
	}

	slog.Warn("no valid JSON found in model response", "len", len(text))

	return &TableSet{Tables: []Table{}}
}

func decodeTables(text string) (*TableSet, bool) {
	var raw any

	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}

	return coerceTables(raw), true
}

// coerceTables forces the parsed value into the {"tables": [...]} shape: a
// bare table object is wrapped into a one-element list, a non-object result
// becomes an empty list. Cell values are stringified since models sometimes
// emit bare numbers.
func coerceTables(raw any) *TableSet {
	obj, ok := raw.(map[string]any)

	if !ok {
		return &TableSet{Tables: []Table{}}
	}

	if _, ok := obj["tables"]; !ok {
		if len(obj) == 0 {
			return &TableSet{Tables: []Table{}}
		}

		obj = map[string]any{"tables": []any{obj}}
	}

	list, _ := obj["tables"].([]any)

	set := &TableSet{Tables: []Table{}}

	for _, item := range list {
		entry, ok := item.(map[string]any)

		if !ok {
			continue
		}

		table := Table{
			Headers: []string{},
			Data:    [][]string{},
		}

		if page, ok := entry["page"].(float64); ok {
			table.Page = int(page)
		}

		if headers, ok := entry["headers"].([]any); ok {
			for _, h := range headers {
				table.Headers = append(table.Headers, stringify(h))
			}
		}

		if data, ok := entry["data"].([]any); ok {
			for _, r := range data {
				row, ok := r.([]any)

				if !ok {
					continue
				}

				cells := make([]string, 0, len(row))

				for _, c := range row {
					cells = append(cells, stringify(c))
				}

				table.Data = append(table.Data, cells)
			}
		}

		set.Tables = append(set.Tables, table)
	}

	return set
}

func stringify(val any) string {
	switch val := val.(type) {
	case string:
		return val

	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)

	case bool:
		return strconv.FormatBool(val)

	case nil:
		return ""
	}

	return fmt.Sprint(val)
}
