package scheme

import (
	"strings"
	"unicode/utf8"
)

// groupThousands inserts sep between every group of three digits of an
// optionally signed run of decimal digits.
func groupThousands(digits, sep string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 || sep == "" {
		return sign + digits
	}

	var b strings.Builder
	b.Grow(len(sign) + len(digits) + len(sep)*(len(digits)/3))
	b.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func isSingleChar(s string) bool {
	return utf8.RuneCountInString(s) == 1
}
