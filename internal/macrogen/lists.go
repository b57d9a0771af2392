package macrogen

import (
	"strconv"
	"strings"
)

// Continuation breaks used inside the selector and counter lists. The counter
// keeps two spaces before the backslash so the first line reads
// "__VA_ARGS__,  \".
const (
	selectorBreak = "\\\n       "
	sentinelBreak = "  \\\n       "
)

// ApplyMacro returns the APPLYF definition for arity k:
//
//	#define P_APPLYF3(f,_1,_2,_3) f(_1) f(_2) f(_3)
func ApplyMacro(prefix string, k int) string {
	var sb strings.Builder
	sb.WriteString("#define ")
	sb.WriteString(prefix)
	sb.WriteString("_APPLYF")
	sb.WriteString(strconv.Itoa(k))
	sb.WriteString("(f")
	for i := 1; i <= k; i++ {
		sb.WriteString(",_")
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteString(")")
	for i := 1; i <= k; i++ {
		sb.WriteString(" f(_")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(")")
	}
	return sb.String()
}

// selectorParams renders " _1, _2, ... _limit," with a line break before
// every group of size elements.
func selectorParams(limit, size int) string {
	items := make([]string, 0, limit)
	for n := 1; n <= limit; n++ {
		items = append(items, "_"+strconv.Itoa(n))
	}
	return wrapList(items, size, selectorBreak)
}

// sentinels renders the descending " limit, ... 1," run that precedes the
// trailing 0 of the counter macro.
func sentinels(limit, size int) string {
	items := make([]string, 0, limit)
	for n := limit; n > 0; n-- {
		items = append(items, strconv.Itoa(n))
	}
	return wrapList(items, size, sentinelBreak)
}

func wrapList(items []string, size int, brk string) string {
	var sb strings.Builder
	for i, item := range items {
		if size > 0 && i%size == 0 {
			sb.WriteString(brk)
		}
		sb.WriteString(" ")
		sb.WriteString(item)
		sb.WriteString(",")
	}
	return sb.String()
}
