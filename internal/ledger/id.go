package ledger

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"time"
)

// IDPrefix starts every invoice identifier.
const IDPrefix = "HI"

// NextID derives the identifier for a new invoice dated on date:
// HI<YYYYMMDD>-<NN>, where NN is one past the highest sequence already used
// for that date anywhere under <outputRoot>/<year>/, or 01 when the date is
// unused. Every file in the year subtree is considered, not just one
// client's, so sequences are unique per day across the whole year.
//
// Concurrent invocations are not coordinated; this is a single-operator tool.
func NextID(outputRoot string, date time.Time) string {
	prefix := IDPrefix + date.Format("20060102")
	next := 1

	yearDir := filepath.Join(outputRoot, date.Format("2006"))
	_ = filepath.WalkDir(yearDir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if seq, ok := parseSequence(d.Name(), prefix); ok && seq >= next {
			next = seq + 1
		}
		return nil
	})

	return fmt.Sprintf("%s-%02d", prefix, next)
}

// parseSequence extracts the numeric sequence from a filename of the form
// <prefix>-<NN>..., stopping at the first non-digit so that project IDs and
// status suffixes like "_PAID" after the number do not matter.
func parseSequence(name, prefix string) (int, bool) {
	if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
		return 0, false
	}
	rest := name[len(prefix):]
	if rest[0] != '-' {
		return 0, false
	}

	digits := 0
	for digits < len(rest)-1 && rest[1+digits] >= '0' && rest[1+digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	seq, err := strconv.Atoi(rest[1 : 1+digits])
	if err != nil {
		return 0, false
	}
	return seq, true
}
