package service

import (
	"context"
	"fmt"
	"time"

	"cloudstay/internal/cache"
	"cloudstay/internal/model"
	"cloudstay/internal/repository"
)

const roomCacheTTL = 5 * time.Minute

// RoomService exposes room listing operations.
type RoomService interface {
	ListRooms(ctx context.Context, category string) ([]model.Room, error)
	CreateRoom(ctx context.Context, room *model.Room) (*model.InsertResult, error)
	GetRoom(ctx context.Context, id string) (*model.Room, error)
	ListHostRooms(ctx context.Context, email string) ([]model.Room, error)
	DeleteRoom(ctx context.Context, id string) (*model.DeleteResult, error)
	SetBooked(ctx context.Context, id string, booked bool) (*model.UpdateResult, error)
	UpdateRoom(ctx context.Context, id string, update model.RoomUpdate) (*model.UpdateResult, error)
}

type roomService struct {
	repo  repository.RoomRepository
	cache *cache.Client
}

// NewRoomService builds a RoomService with repository and cache.
func NewRoomService(repo repository.RoomRepository, cache *cache.Client) RoomService {
	return &roomService{repo: repo, cache: cache}
}

func (s *roomService) cacheKey(id string) string {
	return fmt.Sprintf("room:%s", id)
}

// ListRooms filters by category. The literal "null" sent by clients means no filter.
func (s *roomService) ListRooms(ctx context.Context, category string) ([]model.Room, error) {
	if category == "null" {
		category = ""
	}
	return s.repo.List(ctx, model.RoomFilter{Category: category})
}

func (s *roomService) CreateRoom(ctx context.Context, room *model.Room) (*model.InsertResult, error) {
	res, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	return res, nil
}

func (s *roomService) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	var cached model.Room
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), room, roomCacheTTL)
	return room, nil
}

func (s *roomService) ListHostRooms(ctx context.Context, email string) ([]model.Room, error) {
	return s.repo.List(ctx, model.RoomFilter{HostEmail: email})
}

func (s *roomService) DeleteRoom(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return res, nil
}

func (s *roomService) SetBooked(ctx context.Context, id string, booked bool) (*model.UpdateResult, error) {
	return s.update(ctx, id, map[string]any{"booked": booked})
}

func (s *roomService) UpdateRoom(ctx context.Context, id string, update model.RoomUpdate) (*model.UpdateResult, error) {
	return s.update(ctx, id, update.Fields())
}

func (s *roomService) update(ctx context.Context, id string, fields map[string]any) (*model.UpdateResult, error) {
	res, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return res, nil
}
