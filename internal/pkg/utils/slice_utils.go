package utils

import "strings"

// SplitList splits a comma-separated value into trimmed, non-empty items.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// JoinList joins items with commas, dropping empty entries.
func JoinList(items []string) string {
	return strings.Join(SplitList(strings.Join(items, ",")), ",")
}
