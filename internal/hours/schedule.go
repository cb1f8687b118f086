package hours

import "strings"

const notAvailableText = "Hours not available"

// closedText is how a day without an opening window renders.
const closedText = "Closed"

// weekOrder is the display order for weekly schedules. Listings start the
// week on Monday regardless of the Sunday-first Weekday numbering.
var weekOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayHours is one row of the structured weekly display.
type DayHours struct {
	Day   string
	Hours string
}

// FormatWeek renders the full week as a single joined string, e.g.
// "Mon 9:00 AM–5:00 PM, Tue Closed, ...". When the raw data yields no usable
// schedule it returns the "not available" text instead.
func FormatWeek(raw any) string {
	sched := Normalize(raw)
	if sched.IsEmpty() {
		return notAvailableText
	}

	parts := make([]string, 0, 7)
	for _, day := range weekOrder {
		text := closedText
		if w := sched[day]; w != nil {
			text = windowRange(w)
		}
		parts = append(parts, day.Short()+" "+text)
	}
	return strings.Join(parts, ", ")
}

// WeekRows renders the full week as seven {day, hours} rows for tabular
// display, Monday first. Returns nil when the raw data yields no usable
// schedule.
func WeekRows(raw any) []DayHours {
	sched := Normalize(raw)
	if sched.IsEmpty() {
		return nil
	}

	rows := make([]DayHours, 0, 7)
	for _, day := range weekOrder {
		text := closedText
		if w := sched[day]; w != nil {
			text = windowRange(w)
		}
		rows = append(rows, DayHours{Day: day.DisplayName(), Hours: text})
	}
	return rows
}
