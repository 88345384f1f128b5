// Package shared provides common utility functions used across multiple
// packages in the xmp-reconcile codebase.
package shared

import "strings"

// SplitFieldKey splits a "prefix:property" column name into its parts.
// Keys with more or fewer than two parts are malformed; ok is false.
func SplitFieldKey(key string) (prefix string, property string, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// JoinFieldKey is the inverse of SplitFieldKey.
func JoinFieldKey(prefix string, property string) string {
	return prefix + ":" + property
}

// SplitList splits a comma-separated cell value into elements, trimming
// surrounding whitespace per element. Empty elements are kept; callers that
// write them out skip them.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	elements := make([]string, 0, len(parts))
	for _, part := range parts {
		elements = append(elements, strings.TrimSpace(part))
	}
	return elements
}

// JoinList renders array items as a single cell value.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
