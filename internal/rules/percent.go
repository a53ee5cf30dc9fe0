package rules

import (
	"math"
	"strconv"
	"strings"
)

// percent is a parsed percentage. text is the decimal form used for
// display, so "007%" shows as "7%" and oversized values survive untouched.
type percent struct {
	value int
	text  string
}

// findPercent returns the first maximal run of ASCII digits that is
// immediately followed by '%'.
func findPercent(s string) (percent, bool) {
	for i := 1; i < len(s); i++ {
		if s[i] != '%' || !isDigit(s[i-1]) {
			continue
		}
		start := i - 1
		for start > 0 && isDigit(s[start-1]) {
			start--
		}
		return newPercent(s[start:i]), true
	}
	return percent{}, false
}

func newPercent(digits string) percent {
	text := strings.TrimLeft(digits, "0")
	if text == "" {
		text = "0"
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		// Only overflow can fail here; it is above every threshold anyway.
		v = math.MaxInt
	}
	return percent{value: v, text: text}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
