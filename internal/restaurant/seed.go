package restaurant

import (
	"time"

	"github.com/google/uuid"
)

// dayHours builds one weekday entry for a seed schedule.
func dayHours(open, close string) map[string]any {
	return map[string]any{"open": open, "close": close}
}

// DefaultCatalog returns the built-in sample catalog used when the service
// starts without an external catalog source. Hours payloads are deliberately
// heterogeneous (weekday objects, JSON strings, missing data) to mirror the
// shapes upstream records arrive in.
func DefaultCatalog() []*Restaurant {
	now := time.Now()

	weekdayLunchDinner := map[string]any{
		"sunday":    dayHours("11:00 AM", "9:00 PM"),
		"monday":    dayHours("11:00 AM", "10:00 PM"),
		"tuesday":   dayHours("11:00 AM", "10:00 PM"),
		"wednesday": dayHours("11:00 AM", "10:00 PM"),
		"thursday":  dayHours("11:00 AM", "11:00 PM"),
	}

	catalog := []*Restaurant{
		{
			ID:               uuid.MustParse("7a5a2c1e-0b3f-4f9e-9a41-5f0d8c2e6b10"),
			Name:             "Grill Time",
			KosherCategory:   KosherMeat,
			CertifyingAgency: "ORB",
			Address:          "1234 Harding Ave",
			City:             "Surfside",
			State:            "FL",
			ZipCode:          "33154",
			Phone:            "(305) 555-0141",
			Website:          "https://grilltime.example.com",
			Hours:            weekdayLunchDinner,
		},
		{
			ID:               uuid.MustParse("3f1b9a7d-2c64-4e8a-b0f5-9d3e7a1c4b22"),
			Name:             "Bagel Boss Cafe",
			KosherCategory:   KosherDairy,
			CertifyingAgency: "KM",
			Address:          "98 41st St",
			City:             "Miami Beach",
			State:            "FL",
			ZipCode:          "33140",
			Phone:            "(305) 555-0178",
			// Stored as a JSON string upstream.
			Hours: `{
				"sunday":    {"open": "7am", "close": "3pm"},
				"monday":    {"open": "6:30 AM", "close": "4:00 PM"},
				"tuesday":   {"open": "6:30 AM", "close": "4:00 PM"},
				"wednesday": {"open": "6:30 AM", "close": "4:00 PM"},
				"thursday":  {"open": "6:30 AM", "close": "4:00 PM"},
				"friday":    {"open": "6:30 AM", "close": "2:00 PM"}
			}`,
		},
		{
			ID:               uuid.MustParse("b4c8e2a6-5d19-4c3b-8e7f-1a6d9b0c3e44"),
			Name:             "Falafel Corner",
			KosherCategory:   KosherPareve,
			CertifyingAgency: "OU",
			Address:          "550 Central Ave",
			City:             "Cedarhurst",
			State:            "NY",
			ZipCode:          "11516",
			Phone:            "(516) 555-0192",
			Hours: map[string]any{
				"sunday":   dayHours("11:00", "21:00"),
				"monday":   dayHours("11:00", "21:00"),
				"tuesday":  dayHours("11:00", "21:00"),
				"thursday": dayHours("11:00", "23:00"),
			},
		},
		{
			ID:               uuid.MustParse("9e2d7f31-8a45-4b6c-a1d0-3c5e8f7a2b66"),
			Name:             "Shalom Pizza",
			KosherCategory:   KosherDairy,
			CertifyingAgency: "Kehilla",
			Address:          "8715 W Pico Blvd",
			City:             "Los Angeles",
			State:            "CA",
			ZipCode:          "90035",
			Phone:            "(310) 555-0113",
			Timezone:         "America/Los_Angeles",
			Hours: map[string]any{
				"sunday":    dayHours("11 AM", "10 PM"),
				"monday":    dayHours("11 AM", "10 PM"),
				"tuesday":   dayHours("11 AM", "10 PM"),
				"wednesday": dayHours("11 AM", "10 PM"),
				"thursday":  dayHours("11 AM", "11 PM"),
			},
		},
		{
			// Listing scraped without hours; surfaces as "Hours not available".
			ID:               uuid.MustParse("c1a4f8d2-6b3e-4a7c-9f05-7e2b5d8a1c88"),
			Name:             "Mazel Grill",
			KosherCategory:   KosherMeat,
			CertifyingAgency: "Star-K",
			Address:          "401 Reisterstown Rd",
			City:             "Baltimore",
			State:            "MD",
			ZipCode:          "21208",
			Phone:            "(410) 555-0156",
		},
	}

	for _, r := range catalog {
		r.CreatedAt = now
		r.UpdatedAt = now
	}
	return catalog
}
