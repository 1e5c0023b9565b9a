package similartext

import (
	"fmt"
	"reflect"
	"strings"
)

// maxDistanceIgnored is the edit distance above which a name is too
// different from the input to be worth suggesting.
const maxDistanceIgnored = 3

// distance is the Levenshtein distance between two strings, computed
// byte-wise over two rolling rows.
func distance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(min(prev[j]+1, curr[j-1]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Find returns a suggestion suffix for an error message naming whichever
// entries of names sit closest to src, e.g. ", maybe you mean text?".
// It returns an empty string when src is empty or nothing comes close
// enough.
func Find(names []string, src string) string {
	if src == "" {
		return ""
	}

	best := -1
	var matches []string
	for _, name := range names {
		d := distance(name, src)
		if d > maxDistanceIgnored {
			continue
		}
		switch {
		case best < 0 || d < best:
			best = d
			matches = append(matches[:0], name)
		case d == best:
			matches = append(matches, name)
		}
	}

	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(", maybe you mean %s?", strings.Join(matches, " or "))
}

// FindFromMap is Find over the keys of a string-keyed map.
func FindFromMap(names interface{}, src string) string {
	v := reflect.ValueOf(names)
	if v.Kind() != reflect.Map {
		panic("similartext: FindFromMap requires a map")
	}

	var keys []string
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	return Find(keys, src)
}
