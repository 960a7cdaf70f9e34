// Package config centralizes the environment-driven settings. Values have
// working defaults so a bare `go run` comes up against a local database and
// a Mailpit-style SMTP relay.
package config

import (
	"os"

	"eclat/cmd/internal/domain/entity"
)

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func ListenAddr() string {
	return getenv("LISTEN_ADDR", ":6060")
}

func DatabasePath() string {
	return getenv("DB_PATH", "./database.db")
}

func SMTPHost() string {
	return getenv("SMTP_HOST", "localhost")
}

func SMTPPort() string {
	return getenv("SMTP_PORT", "1025")
}

func MailFrom() string {
	return getenv("MAIL_FROM", "no-reply@eclat.local")
}

// DefaultWeekHours is the weekly schedule applied to beauticians created
// without explicit working hours. It is injected into the beautician
// service at startup rather than hard-coded at the schema level, so a
// deployment can reshape the default week without touching code.
func DefaultWeekHours() entity.WeekHours {
	weekday := entity.DayHours{
		Start:     getenv("DEFAULT_WEEKDAY_START", "09:00"),
		End:       getenv("DEFAULT_WEEKDAY_END", "18:00"),
		Available: true,
	}
	saturday := entity.DayHours{
		Start:     getenv("DEFAULT_SATURDAY_START", "10:00"),
		End:       getenv("DEFAULT_SATURDAY_END", "16:00"),
		Available: true,
	}
	sunday := entity.DayHours{Start: "00:00", End: "00:00", Available: false}

	return entity.WeekHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  saturday,
		Sunday:    sunday,
	}
}
