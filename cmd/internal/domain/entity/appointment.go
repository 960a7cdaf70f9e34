package entity

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// IsValid reports whether s is one of the five known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsActive reports whether an appointment in this status still occupies
// its time slot. Cancelled, completed and no-show appointments free the slot.
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Appointment struct {
	ID           string `gorm:"primaryKey"`
	ClientID     string `gorm:"not null"` // References: users(id)
	ServiceID    string `gorm:"not null"` // References: services(id)
	BeauticianID string `gorm:"not null"` // References: beauticians(id)

	Date     string `gorm:"not null"` // YYYY-MM-DD
	TimeSlot string `gorm:"not null"` // HH:MM, 24-hour

	// Copied from the service at creation time, never re-derived.
	Duration int     `gorm:"not null"` // minutes
	Price    float64 `gorm:"not null"`

	Status       AppointmentStatus `gorm:"type:varchar(16);not null"`
	Notes        string
	ClientNotes  string
	ReminderSent bool  `gorm:"not null"`
	CreatedAt    int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"not null"`

	// Relations
	Client     User       `gorm:"foreignKey:ClientID;references:ID"`
	Service    Service    `gorm:"foreignKey:ServiceID;references:ID"`
	Beautician Beautician `gorm:"foreignKey:BeauticianID;references:ID"`
}
