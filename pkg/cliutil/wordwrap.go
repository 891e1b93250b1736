package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no
// wrapping.
//
// In order to have some room for slop to avoid things like a short word
// being on a line by itself, most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent wraps the string `s` to a maximum width `w` with leading
// indent `i`.  The first line is not indented (this is assumed to be done
// by the caller).  Pass `w` == 0 to do no wrapping.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	if width == 0 {
		return s
	}
	budget := width - 5 - indent
	if budget < 20 {
		budget = 20
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		cur := ""
		for _, word := range strings.Split(line, " ") {
			switch {
			case cur == "":
				cur = word
			case len(cur)+1+len(word) > budget:
				out = append(out, cur)
				cur = word
			default:
				cur += " " + word
			}
		}
		out = append(out, cur)
	}

	prefix := strings.Repeat(" ", indent)
	for i := 1; i < len(out); i++ {
		if out[i] != "" {
			out[i] = prefix + out[i]
		}
	}
	return strings.Join(out, "\n")
}
