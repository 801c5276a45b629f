package fileutil

import (
	"sort"
	"strings"
)

func DedupeStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// DedupeFold removes duplicates case-insensitively, keeping the first
// spelling seen and the original order.
func DedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// SortFold sorts in place, case-insensitively, with a byte-order tiebreak
// so equal-fold spellings still order deterministically.
func SortFold(items []string) {
	sort.Slice(items, func(i, j int) bool {
		li, lj := strings.ToLower(items[i]), strings.ToLower(items[j])
		if li != lj {
			return li < lj
		}
		return items[i] < items[j]
	})
}

// FieldsQuoted splits a directive argument string on whitespace while
// keeping single- or double-quoted spans together. Quotes are stripped
// from the emitted tokens; an unterminated quote runs to end of line.
func FieldsQuoted(s string) []string {
	out := make([]string, 0, 4)
	var cur strings.Builder
	var quote rune
	inToken := false

	flush := func() {
		if inToken {
			out = append(out, cur.String())
			cur.Reset()
			inToken = false
		}
	}

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	flush()
	return out
}
