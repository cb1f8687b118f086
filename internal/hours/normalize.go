package hours

import "encoding/json"

// rawDay is the wire shape of a single day's hours.
type rawDay struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Normalize converts a raw hours payload into a Schedule. Accepted inputs:
//
//   - nil: no data
//   - string or []byte: a JSON-encoded weekday object; anything that does not
//     decode is treated as no data (free-text hours are not interpreted)
//   - any map or struct that marshals to a weekday-keyed object with
//     {open, close} entries
//
// Days whose open or close time fails to parse are dropped rather than
// defaulting to midnight, so a garbage entry cannot masquerade as an
// after-hours opening. A payload that yields zero valid days produces an
// empty Schedule.
func Normalize(raw any) Schedule {
	var sched Schedule

	days := decodeRaw(raw)
	if days == nil {
		return sched
	}

	for name, d := range days {
		day, ok := ParseWeekday(name)
		if !ok {
			continue
		}
		openMin, okOpen := ParseTimeToMinutes(d.Open)
		closeMin, okClose := ParseTimeToMinutes(d.Close)
		if !okOpen || !okClose {
			continue
		}
		sched[day] = &Window{
			Open:         d.Open,
			Close:        d.Close,
			OpenMinutes:  openMin,
			CloseMinutes: closeMin,
		}
	}

	return sched
}

// decodeRaw coerces the heterogeneous input shapes into a weekday map.
func decodeRaw(raw any) map[string]rawDay {
	var data []byte

	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		data = encoded
	}

	var days map[string]rawDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil
	}
	return days
}
