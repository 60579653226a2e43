package services

import (
	"strconv"
	"strings"
	"time"
)

// FormatAmount renders a monetary value with two decimals and comma
// grouping ("25000" -> "25,000.00"). Negative values keep a leading sign.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + fracPart
}

// FormatDate renders dates the way the report displays them: DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}
