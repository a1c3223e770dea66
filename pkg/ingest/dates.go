package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthDayYearRe loosely matches textual dates like "March 5, 2024",
// "Mar 5 2024" or "March 5th, 2024". It is the fallback when direct
// layout parsing fails.
var monthDayYearRe = regexp.MustCompile(
	`^([A-Za-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})$`,
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate parses a regatta date. Three input shapes are accepted,
// tried in this fixed order:
//
//  1. MM/DD/YYYY - slash-delimited, treated as a local calendar date
//     (not UTC) to avoid off-by-one-day shifts,
//  2. YYYY-MM-DD - ISO,
//  3. "Month DD, YYYY" - loosely matched textual form recovered via a
//     fallback regex when direct parsing fails.
//
// If none parse, the error names the offending string.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{"01/02/2006", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	if t, err := time.ParseInLocation("January 2, 2006", s, time.Local); err == nil {
		return t, nil
	}

	if m := monthDayYearRe.FindStringSubmatch(s); m != nil {
		month, ok := parseMonth(m[1])
		if !ok {
			return time.Time{}, invalidDate(s)
		}
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if day < 1 || day > 31 {
			return time.Time{}, invalidDate(s)
		}
		return time.Date(year, month, day, 0, 0, 0, 0, time.Local), nil
	}

	return time.Time{}, invalidDate(s)
}

func parseMonth(s string) (time.Month, bool) {
	if len(s) < 3 {
		return 0, false
	}
	m, ok := months[strings.ToLower(s[:3])]
	return m, ok
}

func invalidDate(s string) error {
	return fmt.Errorf("invalid date %q", s)
}
