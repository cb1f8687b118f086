package hours

import "time"

// StatusType classifies a restaurant's current standing against its weekly
// schedule. The classification is terminal per call; it is recomputed fresh
// from the clock on every evaluation.
type StatusType string

// Status classifications.
const (
	StatusOpen          StatusType = "open"
	StatusOpensToday    StatusType = "opensToday"
	StatusOpensTomorrow StatusType = "opensTomorrow"
	StatusOpensLater    StatusType = "opensLater"
	StatusClosed        StatusType = "closed"
	StatusUnknown       StatusType = "unknown"
)

// Badge is the semantic color token UI callers map to styling.
type Badge string

// Badge tokens.
const (
	BadgeGreen Badge = "green"
	BadgeRed   Badge = "red"
	BadgeGray  Badge = "gray"
)

// Status icons.
const (
	iconOpen    = "\U0001F7E2" // green circle
	iconClosed  = "\U0001F534" // red circle
	iconUnknown = "⚪"     // white circle
)

// Status is the display-ready result of classifying a schedule against an
// instant. It is a pure value: nothing is cached or persisted.
type Status struct {
	Type             StatusType
	Label            string
	Badge            Badge
	Icon             string
	Tooltip          string
	IsOpenNow        bool
	IsClosedForToday bool
	NextOpenTime     string
	ClosingTime      string
}

// StatusAt classifies raw hours data against the given instant. The caller
// supplies now already resolved into the restaurant's timezone; see
// ResolveLocation. Any panic inside classification is absorbed and reported
// as StatusUnknown so a malformed record can never take down a caller.
func StatusAt(raw any, now time.Time) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			status = unknownStatus()
		}
	}()

	return classify(Normalize(raw), now)
}

// ScheduleStatusAt classifies an already-normalized schedule. Useful when the
// caller normalizes once and evaluates several instants.
func ScheduleStatusAt(sched Schedule, now time.Time) Status {
	return classify(sched, now)
}

func classify(sched Schedule, now time.Time) Status {
	if sched.IsEmpty() {
		return unknownStatus()
	}

	today := Weekday(now.Weekday())
	currentMinutes := now.Hour()*60 + now.Minute()

	if w := sched[today]; w != nil {
		if currentMinutes >= w.OpenMinutes && currentMinutes < w.CloseMinutes {
			closing := FormatMinutes(w.CloseMinutes)
			return Status{
				Type:        StatusOpen,
				Label:       "Open now • Closes " + closing,
				Badge:       BadgeGreen,
				Icon:        iconOpen,
				Tooltip:     windowRange(w),
				IsOpenNow:   true,
				ClosingTime: closing,
			}
		}
		if currentMinutes < w.OpenMinutes {
			opening := FormatMinutes(w.OpenMinutes)
			return Status{
				Type:         StatusOpensToday,
				Label:        "Opens " + opening,
				Badge:        BadgeRed,
				Icon:         iconClosed,
				Tooltip:      windowRange(w),
				NextOpenTime: opening,
			}
		}
	}

	// Today's window has passed or today has no entry. Scan forward one full
	// week; the fixed bound terminates even on malformed cyclic data.
	for offset := 1; offset <= 7; offset++ {
		day := today.Plus(offset)
		w := sched[day]
		if w == nil {
			continue
		}

		opening := FormatMinutes(w.OpenMinutes)
		label := "Opens " + opening + " " + day.DisplayName()
		statusType := StatusOpensLater
		if offset == 1 {
			label = "Opens " + opening + " tomorrow"
			statusType = StatusOpensTomorrow
		}

		return Status{
			Type:             statusType,
			Label:            label,
			Badge:            BadgeRed,
			Icon:             iconClosed,
			Tooltip:          windowRange(w),
			IsClosedForToday: true,
			NextOpenTime:     opening,
		}
	}

	return Status{
		Type:             StatusClosed,
		Label:            "Closed",
		Badge:            BadgeRed,
		Icon:             iconClosed,
		Tooltip:          "Closed",
		IsClosedForToday: true,
	}
}

func unknownStatus() Status {
	return Status{
		Type:             StatusUnknown,
		Label:            notAvailableText,
		Badge:            BadgeGray,
		Icon:             iconUnknown,
		Tooltip:          notAvailableText,
		IsClosedForToday: true,
	}
}

// windowRange renders a day's window as "9:00 AM–5:00 PM".
func windowRange(w *Window) string {
	return FormatMinutes(w.OpenMinutes) + "–" + FormatMinutes(w.CloseMinutes)
}
