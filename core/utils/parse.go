package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDList parses a comma-separated list of numeric identifiers.
// Whitespace around entries is ignored and empty entries are skipped,
// so "1, 2,,3" yields [1 2 3]. A non-numeric entry is an error.
func ParseIDList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q in list", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
