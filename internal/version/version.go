// Package version carries build-time version metadata and comparison helpers.
package version

import (
	"strconv"
	"strings"
)

// Populated at build time via -ldflags "-X ...".
var (
	Version   = "2.0.0"
	Commit    = ""
	BuildDate = ""
)

// Compare orders two version strings numerically, field by field.
// Returns -1 when a < b, 0 when equal, 1 when a > b. A leading "v" and
// any pre-release suffix after "-" are ignored; missing fields count as 0.
func Compare(a, b string) int {
	af := fields(a)
	bf := fields(b)
	for i := 0; i < len(af) || i < len(bf); i++ {
		av, bv := 0, 0
		if i < len(af) {
			av = af[i]
		}
		if i < len(bf) {
			bv = bf[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

func fields(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if idx := strings.IndexByte(v, '-'); idx >= 0 {
		v = v[:idx]
	}
	parts := strings.Split(v, ".")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		nums = append(nums, n)
	}
	return nums
}
