package machine

import (
	"strconv"
	"strings"
)

// StateNumber extracts N from a state name of the form "qN".
//
// The first "q" is dropped and the leading integer of the remainder is parsed,
// so "q12" yields 12 and "q3x" yields 3. Names without a leading integer
// (including HaltState) report ok == false and a zero number.
func StateNumber(name string) (n int, ok bool) {
	rest := strings.TrimLeft(strings.Replace(name, "q", "", 1), " \t\n\r")

	end := 0
	if end < len(rest) && (rest[end] == '-' || rest[end] == '+') {
		end++
	}
	digits := end
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// StateName formats the canonical name of state n.
func StateName(n int) string {
	return "q" + strconv.Itoa(n)
}
