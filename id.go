package networth

import (
	"strconv"
	"strings"
)

// ID prefixes for the two entity kinds stored in a tracker.
const (
	CategoryIDPrefix = "cat_"
	ItemIDPrefix     = "item_"
)

// NextID returns a fresh identifier of the form prefix+N where N is one more
// than the largest numeric suffix found among the existing identifiers with
// that prefix. Identifiers whose suffix does not parse as an integer are
// ignored. With no parseable suffix at all the sequence starts at 1.
//
// The result is deterministic and never collides with an existing id under
// the same prefix.
func NextID(existing []string, prefix string) string {
	max := 0
	for _, id := range existing {
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue // malformed suffix, not an error
		}
		if n > max {
			max = n
		}
	}
	return prefix + strconv.Itoa(max+1)
}
