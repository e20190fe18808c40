package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"cloudstay/internal/config"
	"cloudstay/internal/logger"
	"cloudstay/internal/model"
	"cloudstay/internal/repository"
	"cloudstay/internal/storage"
)

// SeedData is the shape of the seed document.
type SeedData struct {
	Users []model.User `json:"users"`
	Rooms []model.Room `json:"rooms"`
}

func main() {
	cfg := config.Load()
	logger.SetDefault(logger.New(os.Stdout, cfg.LogLevel))
	source := cfg.SeedFile

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	data, err := loadSeed(ctx, source)
	if err != nil {
		logger.Error("load seed data", "source", source, "error", err)
		os.Exit(1)
	}
	logger.Info("seed data loaded", "source", source, "users", len(data.Users), "rooms", len(data.Rooms))

	store, err := storage.Open(ctx, cfg, cfg.Debug())
	if err != nil {
		logger.Error("store init", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	created, updated, err := seedUsers(ctx, store.Users, data.Users)
	if err != nil {
		logger.Error("seed users", "error", err)
		os.Exit(1)
	}
	rooms, err := seedRooms(ctx, store.Rooms, data.Rooms)
	if err != nil {
		logger.Error("seed rooms", "error", err)
		os.Exit(1)
	}

	logger.Info("seed completed", "users_created", created, "users_updated", updated, "rooms_created", rooms)
}

// loadSeed reads the seed document from a local file or an http(s) URL.
func loadSeed(ctx context.Context, source string) (*SeedData, error) {
	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch seed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open seed file: %w", err)
		}
		body = f
	}
	defer body.Close()

	var data SeedData
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &data, nil
}

// seedUsers upserts users by email. Records without an email are skipped.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []model.User) (created, updated int, err error) {
	now := time.Now().UnixMilli()
	for _, user := range users {
		if user.Email == "" {
			logger.Warn("skipping seed user without email", "name", user.Name)
			continue
		}
		user.ID = ""
		if user.Timestamp == 0 {
			user.Timestamp = now
		}
		res, err := repo.Upsert(ctx, &user)
		if err != nil {
			return created, updated, fmt.Errorf("upsert user %s: %w", user.Email, err)
		}
		if res.UpsertedCount > 0 {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

func seedRooms(ctx context.Context, repo repository.RoomRepository, rooms []model.Room) (int, error) {
	created := 0
	for _, room := range rooms {
		if _, err := repo.Create(ctx, &room); err != nil {
			return created, fmt.Errorf("create room %q: %w", room.Title, err)
		}
		created++
	}
	return created, nil
}
