package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// dedupeIDs removes duplicates while preserving first-seen order.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// missingIDs returns the requested IDs that are absent from found,
// in the order they were requested.
func missingIDs(requested []int64, found map[int64]struct{}) []int64 {
	var missing []int64
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func formatIDList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

func notFoundList(label string, ids []int64) string {
	return fmt.Sprintf("%s not found: %s", label, formatIDList(ids))
}

// emptyToNil maps a blank optional text value to NULL, so updates store
// blank text the same way creates do.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
