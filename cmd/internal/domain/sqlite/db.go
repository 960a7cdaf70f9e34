package sqlite

import (
	"time"

	"eclat/cmd/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Indexes created outside AutoMigrate: gorm tags cannot express a partial
// unique index, and that index is the source of truth for the double-booking
// invariant. Cancelled/completed/no-show rows are excluded so a freed slot
// can be booked again.
var indexStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_beautician_slot
		ON appointments (beautician_id, date, time_slot)
		WHERE status IN ('pending', 'confirmed')`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_client_date
		ON appointments (client_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_beautician_date
		ON appointments (beautician_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_status_date
		ON appointments (status, date)`,
}

func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Service{},
		&entity.Beautician{},
		&entity.Appointment{},
	)
	if err != nil {
		return nil, err
	}

	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return nil, err
		}
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
