package service

import (
	"errors"
	"sort"

	"eclat/cmd/internal/domain/entity"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errTest = errors.New("boom")

// In-memory repositories implementing the service-layer interfaces.

type fakeAppointmentRepo struct {
	appointments map[string]*entity.Appointment
	saveErr      error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[string]*entity.Appointment{}}
}

// Save mimics the partial unique index: a second active appointment on the
// same (beautician, date, slot) triple fails with gorm.ErrDuplicatedKey.
func (f *fakeAppointmentRepo) Save(appointment *entity.Appointment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if appointment.Status.IsActive() {
		for _, other := range f.appointments {
			if other.ID != appointment.ID &&
				other.Status.IsActive() &&
				other.BeauticianID == appointment.BeauticianID &&
				other.Date == appointment.Date &&
				other.TimeSlot == appointment.TimeSlot {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	stored := *appointment
	f.appointments[appointment.ID] = &stored
	return nil
}

func (f *fakeAppointmentRepo) FindByID(id string) (*entity.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	found := *appt
	return &found, nil
}

func (f *fakeAppointmentRepo) FindActiveByDay(beauticianID, date string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	for _, appt := range f.appointments {
		if appt.BeauticianID == beauticianID && appt.Date == date && appt.Status.IsActive() {
			found := *appt
			appts = append(appts, &found)
		}
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].TimeSlot < appts[j].TimeSlot })
	return appts, nil
}

func (f *fakeAppointmentRepo) FindByClientID(clientID string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	for _, appt := range f.appointments {
		if appt.ClientID == clientID {
			found := *appt
			appts = append(appts, &found)
		}
	}
	sort.Slice(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date > appts[j].Date
		}
		return appts[i].TimeSlot > appts[j].TimeSlot
	})
	return appts, nil
}

func (f *fakeAppointmentRepo) FindPage(status, beauticianID, date string, page, limit int) ([]*entity.Appointment, int64, error) {
	var matched []*entity.Appointment
	for _, appt := range f.appointments {
		if status != "" && string(appt.Status) != status {
			continue
		}
		if beauticianID != "" && appt.BeauticianID != beauticianID {
			continue
		}
		if date != "" && appt.Date != date {
			continue
		}
		found := *appt
		matched = append(matched, &found)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}
		return matched[i].TimeSlot < matched[j].TimeSlot
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type fakeBeauticianRepo struct {
	beauticians map[string]*entity.Beautician
}

func newFakeBeauticianRepo(beauticians ...*entity.Beautician) *fakeBeauticianRepo {
	repo := &fakeBeauticianRepo{beauticians: map[string]*entity.Beautician{}}
	for _, b := range beauticians {
		repo.beauticians[b.ID] = b
	}
	return repo
}

func (f *fakeBeauticianRepo) Save(beautician *entity.Beautician) error {
	f.beauticians[beautician.ID] = beautician
	return nil
}

func (f *fakeBeauticianRepo) FindByID(id string) (*entity.Beautician, error) {
	return f.beauticians[id], nil
}

func (f *fakeBeauticianRepo) FindAll() ([]*entity.Beautician, error) {
	var all []*entity.Beautician
	for _, b := range f.beauticians {
		all = append(all, b)
	}
	return all, nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service
}

func newFakeServiceRepo(services ...*entity.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: map[string]*entity.Service{}}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (f *fakeServiceRepo) Save(svc *entity.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) FindByID(id string) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindAll() ([]*entity.Service, error) {
	var all []*entity.Service
	for _, s := range f.services {
		all = append(all, s)
	}
	return all, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

// fakeMailer signals every send on a channel so tests can wait for the
// detached confirmation goroutine.
type fakeMailer struct {
	sent chan *entity.Appointment
	err  error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan *entity.Appointment, 8)}
}

func (f *fakeMailer) SendAppointmentConfirmation(appt *entity.Appointment, client *entity.User, svc *entity.Service, beautician *entity.Beautician) error {
	f.sent <- appt
	return f.err
}

// Test fixtures.

func weekdayHours(start, end string) entity.WeekHours {
	day := entity.DayHours{Start: start, End: end, Available: true}
	return entity.WeekHours{
		Monday:    day,
		Tuesday:   day,
		Wednesday: day,
		Thursday:  day,
		Friday:    day,
		Saturday:  day,
		Sunday:    entity.DayHours{Start: "00:00", End: "00:00", Available: false},
	}
}

func testBeautician(id string, hours entity.WeekHours) *entity.Beautician {
	return &entity.Beautician{
		ID:           id,
		Name:         "Amélie",
		Email:        id + "@salon.test",
		WorkingHours: datatypes.NewJSONType(hours),
		Active:       true,
	}
}

func testService(id string, duration int, price float64) *entity.Service {
	return &entity.Service{
		ID:       id,
		Name:     "Facial treatment",
		Duration: duration,
		Price:    price,
		Active:   true,
	}
}
