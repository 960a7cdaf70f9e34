package entity

import (
	"time"

	"gorm.io/datatypes"
)

// DayHours is one weekday entry of a beautician's working hours.
type DayHours struct {
	Start     string `json:"start"` // HH:MM
	End       string `json:"end"`   // HH:MM
	Available bool   `json:"available"`
}

type WeekHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// ForWeekday returns the entry matching a time.Weekday.
func (w WeekHours) ForWeekday(d time.Weekday) DayHours {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// Days lists the entries keyed by lowercase weekday name, for validation.
func (w WeekHours) Days() map[string]DayHours {
	return map[string]DayHours{
		"monday":    w.Monday,
		"tuesday":   w.Tuesday,
		"wednesday": w.Wednesday,
		"thursday":  w.Thursday,
		"friday":    w.Friday,
		"saturday":  w.Saturday,
		"sunday":    w.Sunday,
	}
}

type Beautician struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	Phone        string
	Specialties  string // comma-separated
	WorkingHours datatypes.JSONType[WeekHours]
	Active       bool  `gorm:"not null"`
	CreatedAt    int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"not null"`
}
