package repository

import (
	"errors"
	"fmt"
	"testing"

	"eclat/cmd/internal/domain/entity"
	"eclat/cmd/internal/domain/sqlite"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init("file::memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	clients := []*entity.User{
		{ID: "c1", Name: "Chloé", Email: "chloe@example.test"},
		{ID: "c2", Name: "Nadia", Email: "nadia@example.test"},
	}
	for _, client := range clients {
		if err := db.Create(client).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	services := NewServiceRepository(db)
	if err := services.Save(&entity.Service{ID: "s1", Name: "Manicure", Duration: 60, Price: 35, Active: true}); err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	day := entity.DayHours{Start: "09:00", End: "18:00", Available: true}
	beauticians := NewBeauticianRepository(db)
	err := beauticians.Save(&entity.Beautician{
		ID:    "b1",
		Name:  "Amélie",
		Email: "amelie@salon.test",
		WorkingHours: datatypes.NewJSONType(entity.WeekHours{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day, Friday: day,
			Saturday: day,
			Sunday:   entity.DayHours{Available: false},
		}),
		Active: true,
	})
	if err != nil {
		t.Fatalf("failed to seed beautician: %v", err)
	}
}

func appointment(clientID, date, slot string, status entity.AppointmentStatus) *entity.Appointment {
	return &entity.Appointment{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		ServiceID:    "s1",
		BeauticianID: "b1",
		Date:         date,
		TimeSlot:     slot,
		Duration:     60,
		Price:        35,
		Status:       status,
	}
}

func TestSave_DuplicateActiveSlot(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewAppointmentRepository(db)

	if err := repo.Save(appointment("c1", "2026-03-02", "10:00", entity.StatusPending)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	err := repo.Save(appointment("c2", "2026-03-02", "10:00", entity.StatusConfirmed))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

// Terminal rows are excluded from the unique index: a cancelled booking
// frees its slot for a new active one.
func TestSave_CancelledRowFreesSlot(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewAppointmentRepository(db)

	first := appointment("c1", "2026-03-02", "10:00", entity.StatusPending)
	if err := repo.Save(first); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	first.Status = entity.StatusCancelled
	if err := repo.Save(first); err != nil {
		t.Fatalf("cancelling failed: %v", err)
	}

	if err := repo.Save(appointment("c2", "2026-03-02", "10:00", entity.StatusPending)); err != nil {
		t.Fatalf("rebooking a freed slot failed: %v", err)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewAppointmentRepository(db)

	appt, err := repo.FindByID("ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt != nil {
		t.Fatalf("expected nil for a missing appointment, got %+v", appt)
	}
}

func TestFindActiveByDay(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewAppointmentRepository(db)

	seeds := []*entity.Appointment{
		appointment("c1", "2026-03-02", "14:00", entity.StatusConfirmed),
		appointment("c1", "2026-03-02", "09:00", entity.StatusPending),
		appointment("c2", "2026-03-02", "11:00", entity.StatusCancelled),
		appointment("c2", "2026-03-03", "09:00", entity.StatusPending),
	}
	for _, appt := range seeds {
		if err := repo.Save(appt); err != nil {
			t.Fatalf("failed to seed appointment: %v", err)
		}
	}

	active, err := repo.FindActiveByDay("b1", "2026-03-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(active) != 2 {
		t.Fatalf("expected 2 active appointments, got %d", len(active))
	}
	if active[0].TimeSlot != "09:00" || active[1].TimeSlot != "14:00" {
		t.Fatalf("expected slot order 09:00, 14:00, got %s, %s", active[0].TimeSlot, active[1].TimeSlot)
	}
}

func TestFindByClientID_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewAppointmentRepository(db)

	for _, appt := range []*entity.Appointment{
		appointment("c1", "2026-03-02", "09:00", entity.StatusCompleted),
		appointment("c1", "2026-03-09", "10:00", entity.StatusPending),
		appointment("c2", "2026-03-02", "10:00", entity.StatusPending),
	} {
		if err := repo.Save(appt); err != nil {
			t.Fatalf("failed to seed appointment: %v", err)
		}
	}

	mine, err := repo.FindByClientID("c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mine) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(mine))
	}
	if mine[0].Date != "2026-03-09" {
		t.Fatalf("expected newest first, got %s", mine[0].Date)
	}
}

func TestFindPage(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	repo := NewAppointmentRepository(db)

	for i := 0; i < 5; i++ {
		status := entity.StatusPending
		if i%2 == 1 {
			status = entity.StatusCompleted
		}
		appt := appointment("c1", "2026-03-02", fmt.Sprintf("%02d:00", 9+i), status)
		if err := repo.Save(appt); err != nil {
			t.Fatalf("failed to seed appointment: %v", err)
		}
	}

	page, total, err := repo.FindPage("", "", "", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 rows on page 1, got %d", len(page))
	}
	if page[0].TimeSlot != "09:00" || page[1].TimeSlot != "10:00" {
		t.Fatalf("expected slots 09:00, 10:00, got %s, %s", page[0].TimeSlot, page[1].TimeSlot)
	}

	last, total, err := repo.FindPage("", "", "", 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 || len(last) != 1 {
		t.Fatalf("expected the last page to hold 1 of 5, got %d of %d", len(last), total)
	}

	pending, total, err := repo.FindPage("pending", "b1", "2026-03-02", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(pending) != 3 {
		t.Fatalf("expected 3 pending appointments, got %d of %d", len(pending), total)
	}
}
