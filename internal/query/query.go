// Package query filters and limits process snapshots. It is pure: it never
// touches the OS, only the snapshot it is handed.
package query

import (
	"strings"

	"github.com/mkows/sysscope/internal/models"
)

// DefaultLimit caps the result length when the caller does not supply one.
const DefaultLimit = 50

// Search retains entries whose name contains the pattern as a case-folded
// substring, then truncates to the limit. Filtering always happens before
// truncation, and relative order is preserved. A nil pattern matches
// everything; a nil limit means DefaultLimit; a zero limit yields an empty
// result, not an error. The returned slice is always non-nil.
func Search(snapshot []models.ProcessEntry, namePattern *string, limit *int) []models.ProcessEntry {
	matched := make([]models.ProcessEntry, 0, len(snapshot))

	if namePattern == nil {
		matched = append(matched, snapshot...)
	} else {
		needle := strings.ToLower(*namePattern)
		for _, entry := range snapshot {
			if strings.Contains(strings.ToLower(entry.Name), needle) {
				matched = append(matched, entry)
			}
		}
	}

	n := DefaultLimit
	if limit != nil {
		n = *limit
	}
	if len(matched) > n {
		matched = matched[:n]
	}
	return matched
}
