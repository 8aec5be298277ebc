package fixulps

import (
	"slices"
	"strings"
)

// rounding mode variants whose per-mode records belong to the base function
var rounding_variants = []string{"downward", "towardzero", "upward"}

// scan_state carries the per-file cursor: the function name of the most
// recent matching header and whether its record is being filtered.
type scan_state struct {
	fn       string
	tofilter bool
}

func is_func(fn string, func2rem string) bool {
	f := strings.Split(fn, "_")
	if len(f) >= 2 {
		return func2rem == f[0] && slices.Contains(rounding_variants, f[1])
	}
	return func2rem == f[0]
}

func strip_name(field string) string {
	field = strings.ReplaceAll(field, "\"", "")
	field = strings.ReplaceAll(field, ":", "")
	return field
}

// keep_line decides whether a single line survives and advances the scan
// state. The line includes its terminator; retained lines are written back
// byte for byte.
func (s *scan_state) keep_line(line string, func2rem string, ftype2rem string, fpart2rem string) bool {
	if strings.HasPrefix(line, "#") || line == "\n" || line == "\r\n" {
		return true
	}
	if strings.HasPrefix(line, FUNCTION_PREFIX) {
		// Every header re-arms the filter, matching or not. Headers are
		// never removed themselves.
		s.tofilter = false
		fields := strings.Fields(line)
		if len(fields) == FUNCTION_NR_FIELDS && fpart2rem == fields[1] {
			s.fn = strip_name(fields[4])
			s.tofilter = true
		}
		return true
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	ftype := strings.ReplaceAll(fields[0], ":", "")
	if is_func(s.fn, func2rem) && ftype2rem == ftype && s.tofilter {
		return false
	}
	return true
}
