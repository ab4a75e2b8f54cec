package scheduling

import (
	"sync"
	"time"

	bookingRepo "ayursutra/database/repository/booking"
	therapyRepo "ayursutra/database/repository/therapy"
	userRepo "ayursutra/database/repository/user"
	"ayursutra/models"
)

// memBookingRepo is an in-memory BookingRepository for tests.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	clone := *b
	clone.Sessions = append([]models.Session(nil), b.Sessions...)
	return &clone, nil
}

func (r *memBookingRepo) GetByStatus(status string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			clone := *b
			clone.Sessions = append([]models.Session(nil), b.Sessions...)
			out = append(out, clone)
		}
	}
	return out, nil
}

func (r *memBookingRepo) GetByPatient(patientID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PatientID == patientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) GetByPractitioner(practitionerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PractitionerID == practitionerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) CountForDay(practitionerID, therapyID string, day time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, b := range r.bookings {
		if b.PractitionerID == practitionerID && b.TherapyID == therapyID && b.AssignedDate.Equal(day) {
			count++
		}
	}
	return count, nil
}

func (r *memBookingRepo) ReplaceSessions(bookingID string, sessions []models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Sessions = append([]models.Session(nil), sessions...)
	return nil
}

func (r *memBookingRepo) UpdateSessionStatus(bookingID string, sessionIndex int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Sessions[sessionIndex].Status = status
	return nil
}

func (r *memBookingRepo) UpdateProgress(bookingID string, progress models.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Progress = progress
	return nil
}

func (r *memBookingRepo) UpdateStatus(bookingID string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *memBookingRepo) AppendSessionNotification(bookingID string, sessionIndex int, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Sessions[sessionIndex].Notifications = append(b.Sessions[sessionIndex].Notifications, n)
	return nil
}

func (r *memBookingRepo) MarkNotificationSent(bookingID string, sessionIndex int, kind string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	for i := range b.Sessions[sessionIndex].Notifications {
		if b.Sessions[sessionIndex].Notifications[i].Kind == kind {
			b.Sessions[sessionIndex].Notifications[i].Sent = true
			b.Sessions[sessionIndex].Notifications[i].SentAt = &at
		}
	}
	return nil
}

func (r *memBookingRepo) GetWithSessionsBetween(from, to time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		for _, s := range b.Sessions {
			if !s.Date.Before(from) && !s.Date.After(to) {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

var _ bookingRepo.BookingRepository = (*memBookingRepo)(nil)

// memTherapyRepo is an in-memory TherapyRepository for tests.
type memTherapyRepo struct {
	therapies map[string]*models.Therapy
}

func newMemTherapyRepo(therapies ...*models.Therapy) *memTherapyRepo {
	r := &memTherapyRepo{therapies: make(map[string]*models.Therapy)}
	for _, t := range therapies {
		r.therapies[t.ID] = t
	}
	return r
}

func (r *memTherapyRepo) Create(t *models.Therapy) error {
	r.therapies[t.ID] = t
	return nil
}

func (r *memTherapyRepo) GetByID(id string) (*models.Therapy, error) {
	t, ok := r.therapies[id]
	if !ok {
		return nil, therapyRepo.ErrNotFound
	}
	return t, nil
}

func (r *memTherapyRepo) GetActive() ([]models.Therapy, error) {
	var out []models.Therapy
	for _, t := range r.therapies {
		if t.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTherapyRepo) Update(t *models.Therapy) error {
	r.therapies[t.ID] = t
	return nil
}

var _ therapyRepo.TherapyRepository = (*memTherapyRepo)(nil)

// memUserRepo is an in-memory UserRepository for tests.
type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *memUserRepo) GetByRole(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

var _ userRepo.UserRepository = (*memUserRepo)(nil)

// mockNotifier records dispatch calls.
type mockNotifier struct {
	mu       sync.Mutex
	patient  []string // messages passed to NotifyPatient
	notices  []string // kinds passed to DeliverSessionNotice
	messages []string // messages passed to DeliverSessionNotice
}

func (m *mockNotifier) NotifyPatient(bookingID string, sessionIndex int, message, subject string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patient = append(m.patient, message)
}

func (m *mockNotifier) DeliverSessionNotice(bookingID string, sessionIndex int, kind, subject, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, kind)
	m.messages = append(m.messages, message)
}
