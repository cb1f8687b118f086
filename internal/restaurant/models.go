// Package restaurant provides the kosher restaurant catalog.
package restaurant

import (
	"time"

	"github.com/google/uuid"
)

// KosherCategory classifies a restaurant's kosher designation.
type KosherCategory string

// Kosher categories.
const (
	KosherMeat   KosherCategory = "meat"
	KosherDairy  KosherCategory = "dairy"
	KosherPareve KosherCategory = "pareve"
)

// ParseKosherCategory validates a category string. Empty input is valid and
// means "no filter".
func ParseKosherCategory(s string) (KosherCategory, bool) {
	switch KosherCategory(s) {
	case "", KosherMeat, KosherDairy, KosherPareve:
		return KosherCategory(s), true
	}
	return "", false
}

// Restaurant is a directory listing. Hours carries the raw opening-hours
// payload exactly as stored upstream (weekday object or JSON string); the
// hours engine interprets it at read time.
type Restaurant struct {
	ID               uuid.UUID
	Name             string
	KosherCategory   KosherCategory
	CertifyingAgency string
	Address          string
	City             string
	State            string
	ZipCode          string
	Phone            string
	Website          string
	Hours            any
	Timezone         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
