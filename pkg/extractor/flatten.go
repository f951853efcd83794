package extractor

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key normalizes a header into a single camel-style token: the first word
// lower-cased, subsequent words title-cased and joined bare ("Unita di
// Misura" -> "unitaDiMisura"). A single word already starting lower-case is
// returned unchanged, which makes Key idempotent on its own output.
func Key(header string) string {
	words := strings.Fields(header)

	if len(words) == 0 {
		return ""
	}

	if len(words) == 1 {
		word := words[0]

		if r, _ := utf8.DecodeRuneInString(word); unicode.IsLower(r) {
			return word
		}

		return strings.ToLower(word)
	}

	var b strings.Builder

	b.WriteString(strings.ToLower(words[0]))

	for _, word := range words[1:] {
		word = strings.ToLower(word)

		r, size := utf8.DecodeRuneInString(word)

		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}

	return b.String()
}

// Flatten converts a table set into a flat sequence of header-keyed rows.
// Headers and cells zip positionally: cells beyond the header count are
// dropped and short rows produce partial mappings. Width mismatches are
// counted and logged per table instead of failing.
func Flatten(set *TableSet) []Row {
	rows := make([]Row, 0)

	for _, table := range set.Tables {
		keys := make([]string, len(table.Headers))

		for i, header := range table.Headers {
			keys[i] = Key(header)
		}

		mismatched := 0

		for _, cells := range table.Data {
			if len(cells) != len(keys) {
				mismatched++
			}

			row := Row{}

			for i, key := range keys {
				if i < len(cells) {
					row[key] = cells[i]
				}
			}

			rows = append(rows, row)
		}

		if mismatched > 0 {
			slog.Warn("row width does not match header count",
				"page", table.Page,
				"headers", len(keys),
				"rows", mismatched,
			)
		}
	}

	return rows
}
