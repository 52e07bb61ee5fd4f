package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ReportLayout is the month-first layout used in elimination reports.
const ReportLayout = "01-02-2006"

// inputLayouts are the date shapes accepted from result sources besides DateLayout,
// tried in order.
var inputLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	ReportLayout,
	"1/2/06",
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseGameDate accepts any of the supported source layouts and returns midnight UTC.
func ParseGameDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := ParseDate(value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatReportDate formats a time as MM-DD-YYYY.
func FormatReportDate(t time.Time) string {
	return t.Format(ReportLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
