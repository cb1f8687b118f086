// Package hours computes open/closed status and display schedules from the
// loosely structured opening-hours data attached to restaurant records.
//
// Upstream records carry hours in several shapes: a JSON object keyed by
// lowercase weekday name with {open, close} entries, the same object encoded
// as a JSON string, or nothing at all. Every entry point in this package
// accepts any of those without panicking; unusable input degrades to an
// "unknown" status or a "not available" schedule.
package hours

// Weekday identifies a day of the week. The numbering matches time.Weekday
// (Sunday == 0) so a wall-clock instant converts directly.
type Weekday int

// Days of the week, Sunday first.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var weekdayDisplay = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var weekdayShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the lowercase weekday name used as a schedule key.
func (d Weekday) String() string {
	return weekdayNames[d%7]
}

// DisplayName returns the capitalized weekday name for labels.
func (d Weekday) DisplayName() string {
	return weekdayDisplay[d%7]
}

// Short returns the three-letter abbreviation for compact displays.
func (d Weekday) Short() string {
	return weekdayShort[d%7]
}

// Plus returns the weekday n days after d, wrapping around the week.
func (d Weekday) Plus(n int) Weekday {
	return Weekday((int(d) + n) % 7)
}

// ParseWeekday maps a lowercase weekday name to its Weekday. The bool is
// false for anything that is not one of the seven names.
func ParseWeekday(name string) (Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), true
		}
	}
	return 0, false
}

// Window is one day's opening window with both the raw strings as received
// and their parsed minutes-since-midnight values.
type Window struct {
	Open         string
	Close        string
	OpenMinutes  int
	CloseMinutes int
}

// Schedule holds at most one opening window per weekday, indexed by Weekday.
// Days without an entry are closed all day.
type Schedule [7]*Window

// IsEmpty reports whether no day has an opening window. An empty schedule is
// the normalizer's signal that no usable hours data exists.
func (s Schedule) IsEmpty() bool {
	for _, w := range s {
		if w != nil {
			return false
		}
	}
	return true
}
