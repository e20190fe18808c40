package repository

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"cloudstay/internal/model"
)

// UserRepository defines user persistence operations. Users are keyed by email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// Upsert creates the record for user.Email or overwrites its fields.
	Upsert(ctx context.Context, user *model.User) (*model.UpdateResult, error)
	UpdateFields(ctx context.Context, email string, fields map[string]any) (*model.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

// RoomRepository defines room persistence operations.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) (*model.InsertResult, error)
	FindByID(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context, filter model.RoomFilter) ([]model.Room, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
	Count(ctx context.Context, filter model.RoomFilter) (int64, error)
}

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error)
	List(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error)
	ListSales(ctx context.Context, filter model.BookingFilter) ([]model.Sale, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// Store is the explicitly constructed handle over the three collections.
type Store struct {
	Users    UserRepository
	Rooms    RoomRepository
	Bookings BookingRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// NewStore assembles a store handle. ping and close may be nil.
func NewStore(users UserRepository, rooms RoomRepository, bookings BookingRepository, ping, close func(ctx context.Context) error) *Store {
	return &Store{
		Users:    users,
		Rooms:    rooms,
		Bookings: bookings,
		ping:     ping,
		close:    close,
	}
}

// Ping checks that the backing store answers.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backing connections.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// SchemaGuard runs a schema setup step until it succeeds once. Later calls
// are no-ops, so a store that was down at boot is migrated on a later ping.
type SchemaGuard struct {
	mu    sync.Mutex
	done  bool
	setup func(ctx context.Context) error
}

// NewSchemaGuard wraps setup.
func NewSchemaGuard(setup func(ctx context.Context) error) *SchemaGuard {
	return &SchemaGuard{setup: setup}
}

// Ensure runs setup unless an earlier call already succeeded.
func (g *SchemaGuard) Ensure(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done {
		return nil
	}
	if err := g.setup(ctx); err != nil {
		return err
	}
	g.done = true
	return nil
}

// NewGormStore builds a store over a GORM connection. The schema is migrated
// on the first successful ping.
func NewGormStore(db *gorm.DB) *Store {
	schema := NewSchemaGuard(func(ctx context.Context) error {
		return Migrate(db.WithContext(ctx))
	})
	return NewStore(
		NewUserRepository(db),
		NewRoomRepository(db),
		NewBookingRepository(db),
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("get sql db: %w", err)
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				return err
			}
			return schema.Ensure(ctx)
		},
		func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("get sql db: %w", err)
			}
			return sqlDB.Close()
		},
	)
}

// Migrate creates or updates the relational schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Room{}, &model.Booking{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
