package hours

import (
	"regexp"
	"strconv"
	"strings"
)

// Time-string patterns, most specific first. Listings come from scraped and
// hand-entered sources, so the meridiem may be glued to the hour ("11am"),
// separated by a space ("11 PM"), or dotted ("11 a.m."). Bare 24-hour
// strings ("09:00") show up in imported records.
var (
	reClockMeridiem = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*([ap])\.?m\.?$`)
	reHourMeridiem  = regexp.MustCompile(`(?i)^(\d{1,2})\s*([ap])\.?m\.?$`)
	reClock24       = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseTimeToMinutes converts a loosely formatted time string into minutes
// since midnight (0-1439). The bool is false when nothing matched; callers
// must not confuse that with a valid midnight (0, true).
func ParseTimeToMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if m := reClockMeridiem.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return meridiemMinutes(hour, minute, m[3])
	}

	if m := reHourMeridiem.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return meridiemMinutes(hour, 0, m[2])
	}

	if m := reClock24.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, false
		}
		return hour*60 + minute, true
	}

	return 0, false
}

// meridiemMinutes applies AM/PM rules: 12 AM is midnight, 12 PM is noon, and
// PM adds twelve hours unless the hour is already 12 or greater.
func meridiemMinutes(hour, minute int, meridiem string) (int, bool) {
	if hour < 1 || hour > 23 || minute > 59 {
		return 0, false
	}

	switch strings.ToLower(meridiem) {
	case "a":
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 12 {
			hour += 12
		}
	}

	total := hour*60 + minute
	if total >= minutesPerDay {
		return 0, false
	}
	return total, true
}

const minutesPerDay = 24 * 60

// FormatMinutes renders minutes since midnight in the canonical
// "H:MM AM/PM" display form.
func FormatMinutes(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}

	hour := minutes / 60
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return strconv.Itoa(display) + ":" + pad2(minute) + " " + meridiem
}

// FormatTimeLabel re-renders a recognized time string into the canonical
// display form. Unrecognized input is returned verbatim so a raw listing
// never turns into "Invalid Date" style garbage.
func FormatTimeLabel(raw string) string {
	if minutes, ok := ParseTimeToMinutes(raw); ok {
		return FormatMinutes(minutes)
	}
	return raw
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
