package models

import (
	"github.com/jewgo/jewgo/internal/hours"
	"github.com/jewgo/jewgo/internal/restaurant"
)

// HoursStatus is the display-ready open/closed classification for a listing.
type HoursStatus struct {
	Type             string `json:"type"`
	Label            string `json:"label"`
	Badge            string `json:"badge"`
	Icon             string `json:"icon"`
	Tooltip          string `json:"tooltip"`
	IsOpenNow        bool   `json:"isOpenNow"`
	IsClosedForToday bool   `json:"isClosedForToday"`
	NextOpenTime     string `json:"nextOpenTime,omitempty"`
	ClosingTime      string `json:"closingTime,omitempty"`
	EvaluatedAt      string `json:"evaluatedAt"`
	Timezone         string `json:"timezone"`
}

// DayHours is one row of a weekly schedule display.
type DayHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// WeeklyHours is the full 7-day schedule display for a listing.
type WeeklyHours struct {
	Available bool       `json:"available"`
	Display   string     `json:"display"`
	Days      []DayHours `json:"days,omitempty"`
}

// Restaurant is a directory listing.
type Restaurant struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	KosherCategory   string       `json:"kosherCategory"`
	CertifyingAgency string       `json:"certifyingAgency"`
	Address          string       `json:"address,omitempty"`
	City             string       `json:"city,omitempty"`
	State            string       `json:"state,omitempty"`
	ZipCode          string       `json:"zipCode,omitempty"`
	Phone            string       `json:"phone,omitempty"`
	Website          string       `json:"website,omitempty"`
	Timezone         string       `json:"timezone,omitempty"`
	HoursStatus      *HoursStatus `json:"hoursStatus,omitempty"`
	UpdatedAt        Timestamp    `json:"updatedAt"`
}

// PagedRestaurants is a paginated listing response.
type PagedRestaurants struct {
	Items []Restaurant      `json:"items"`
	Meta  PagedResponseMeta `json:"meta"`
}

// Enums represents the enum values used by the API.
type Enums struct {
	StatusTypes      []string `json:"statusTypes"`
	Badges           []string `json:"badges"`
	KosherCategories []string `json:"kosherCategories"`
}

// NewRestaurant converts a domain restaurant to its API form.
func NewRestaurant(r *restaurant.Restaurant) Restaurant {
	return Restaurant{
		ID:               r.ID.String(),
		Name:             r.Name,
		KosherCategory:   string(r.KosherCategory),
		CertifyingAgency: r.CertifyingAgency,
		Address:          r.Address,
		City:             r.City,
		State:            r.State,
		ZipCode:          r.ZipCode,
		Phone:            r.Phone,
		Website:          r.Website,
		Timezone:         r.Timezone,
		UpdatedAt:        Timestamp(r.UpdatedAt),
	}
}

// NewHoursStatus converts an engine status to its API form. evaluatedAt and
// timezone record the instant and zone the classification was made in.
func NewHoursStatus(st hours.Status, evaluatedAt, timezone string) *HoursStatus {
	return &HoursStatus{
		Type:             string(st.Type),
		Label:            st.Label,
		Badge:            string(st.Badge),
		Icon:             st.Icon,
		Tooltip:          st.Tooltip,
		IsOpenNow:        st.IsOpenNow,
		IsClosedForToday: st.IsClosedForToday,
		NextOpenTime:     st.NextOpenTime,
		ClosingTime:      st.ClosingTime,
		EvaluatedAt:      evaluatedAt,
		Timezone:         timezone,
	}
}

// NewWeeklyHours converts a weekly schedule to its API form.
func NewWeeklyHours(week *restaurant.WeeklySchedule) WeeklyHours {
	out := WeeklyHours{
		Available: week.Days != nil,
		Display:   week.Display,
	}
	for _, d := range week.Days {
		out.Days = append(out.Days, DayHours{Day: d.Day, Hours: d.Hours})
	}
	return out
}
