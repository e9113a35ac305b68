// Package strings provides string list helpers shared by config parsing.
package strings

import (
	"strings"
)

// SplitList splits raw on sep and returns the trimmed, non-empty elements
// with duplicates removed. Order of first occurrence is preserved.
//
//	SplitList(" kafka-1:9092, kafka-2:9092,,kafka-1:9092 ", ",")
//	// []string{"kafka-1:9092", "kafka-2:9092"}
func SplitList(raw, sep string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return DedupeAndTrim(strings.Split(raw, sep))
}

// DedupeAndTrim trims every element and drops empties and repeats. A nil or
// empty input yields nil.
func DedupeAndTrim(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
