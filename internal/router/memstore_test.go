package router

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
	"cloudstay/internal/repository"
)

// memUsers is an in-memory UserRepository.
type memUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUsers) List(context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) Upsert(_ context.Context, user *model.User) (*model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[user.Email]; ok {
		user.ID = existing.ID
		m.users[user.Email] = *user
		return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	user.ID = uuid.NewString()
	m.users[user.Email] = *user
	return &model.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: user.ID}, nil
}

func (m *memUsers) UpdateFields(_ context.Context, email string, fields map[string]any) (*model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return &model.UpdateResult{Acknowledged: true}, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "image":
			u.Image = v.(string)
		case "role":
			u.Role = v.(string)
		case "status":
			u.Status = v.(string)
		case "timestamp":
			u.Timestamp = v.(int64)
		}
	}
	m.users[email] = u
	return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

// memRooms is an in-memory RoomRepository.
type memRooms struct {
	mu    sync.Mutex
	rooms map[string]model.Room
}

func (m *memRooms) Create(_ context.Context, room *model.Room) (*model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room.ID = uuid.NewString()
	m.rooms[room.ID] = *room
	return &model.InsertResult{Acknowledged: true, InsertedID: room.ID}, nil
}

func (m *memRooms) FindByID(_ context.Context, id string) (*model.Room, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return &r, nil
}

func (m *memRooms) List(_ context.Context, filter model.RoomFilter) ([]model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Room{}
	for _, r := range m.rooms {
		if matchRoom(r, filter) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRooms) UpdateFields(_ context.Context, id string, fields map[string]any) (*model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return &model.UpdateResult{Acknowledged: true}, nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			r.Title = v.(string)
		case "price":
			r.Price = v.(decimal.Decimal)
		case "booked":
			r.Booked = v.(bool)
		}
	}
	m.rooms[id] = r
	return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memRooms) Delete(_ context.Context, id string) (*model.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[id]; !ok {
		return &model.DeleteResult{Acknowledged: true}, nil
	}
	delete(m.rooms, id)
	return &model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *memRooms) Count(ctx context.Context, filter model.RoomFilter) (int64, error) {
	rooms, _ := m.List(ctx, filter)
	return int64(len(rooms)), nil
}

func matchRoom(r model.Room, f model.RoomFilter) bool {
	return (f.Category == "" || r.Category == f.Category) && (f.HostEmail == "" || r.Host.Email == f.HostEmail)
}

// memBookings is an in-memory BookingRepository.
type memBookings struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func (m *memBookings) Create(_ context.Context, b *model.Booking) (*model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = uuid.NewString()
	m.bookings = append(m.bookings, *b)
	return &model.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
}

func (m *memBookings) List(_ context.Context, f model.BookingFilter) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Booking{}
	for _, b := range m.bookings {
		if (f.GuestEmail == "" || b.Guest.Email == f.GuestEmail) && (f.HostEmail == "" || b.Host.Email == f.HostEmail) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) ListSales(ctx context.Context, f model.BookingFilter) ([]model.Sale, error) {
	bookings, _ := m.List(ctx, f)
	sales := make([]model.Sale, 0, len(bookings))
	for _, b := range bookings {
		sales = append(sales, model.Sale{Date: b.Date, Price: b.Price})
	}
	return sales, nil
}

func (m *memBookings) Delete(_ context.Context, id string) (*model.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return &model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &model.DeleteResult{Acknowledged: true}, nil
}

func newMemStore(now time.Time, users ...model.User) *repository.Store {
	mu := &memUsers{users: map[string]model.User{}}
	for _, u := range users {
		if u.Timestamp == 0 {
			u.Timestamp = now.UnixMilli()
		}
		u.ID = uuid.NewString()
		mu.users[u.Email] = u
	}
	return repository.NewStore(mu, &memRooms{rooms: map[string]model.Room{}}, &memBookings{}, nil, nil)
}
