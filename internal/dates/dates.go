// Package dates formats the YYYY / YYYY-MM tokens used by the resume data.
package dates

import (
	"strconv"
	"strings"
)

// Present is rendered in place of a missing end date.
const Present = "Present"

// RangeSeparator joins the two sides of a range: an en dash with single spaces.
const RangeSeparator = " – "

var months = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatDate renders "2021-06" as "Jun 2021" and passes a bare year through.
// An empty value is rendered as Present. Tokens with an unknown month are
// returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return Present
	}
	year, month, ok := strings.Cut(s, "-")
	if !ok {
		return s
	}
	n, err := strconv.Atoi(month)
	if err != nil || n < 1 || n > len(months) {
		return s
	}
	return months[n-1] + " " + year
}

// FormatRange renders a start/end pair such as "Jun 2021 – Present".
func FormatRange(start, end string) string {
	return FormatDate(start) + RangeSeparator + FormatDate(end)
}
