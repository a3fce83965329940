package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"profilehub/internal/model"
	"profilehub/internal/repository"
)

// demoPassword is the shared password for seeded development users.
const demoPassword = "password123"

var demoUsers = []model.User{
	{
		Username:    "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice Nguyen",
		Bio:         "Product designer. I collect mechanical keyboards and opinions about typography.",
		AvatarURL:   "https://i.pravatar.cc/150?u=alice",
	},
	{
		Username:    "bob",
		Email:       "bob@example.com",
		DisplayName: "Bob Castellano",
		Bio:         "Backend engineer by day, sourdough baker by night.",
		AvatarURL:   "https://i.pravatar.cc/150?u=bob",
	},
	{
		Username:    "carol",
		Email:       "carol@example.com",
		DisplayName: "Carol Okafor",
		Bio:         "Photographer and occasional blogger.",
		AvatarURL:   "https://i.pravatar.cc/150?u=carol",
	},
}

// SeedService inserts or refreshes the demo user fixtures. Intended for
// local development only.
type SeedService interface {
	Run(ctx context.Context) (created, updated int, err error)
}

type seedService struct {
	userRepo repository.UserRepository
}

// NewSeedService creates a seed service.
func NewSeedService(userRepo repository.UserRepository) SeedService {
	return &seedService{userRepo: userRepo}
}

// Run upserts every demo user keyed on username, so repeated runs are
// idempotent.
func (s *seedService) Run(ctx context.Context) (created, updated int, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return 0, 0, fmt.Errorf("hash demo password: %w", err)
	}

	for _, demo := range demoUsers {
		existing, err := s.userRepo.FindByUsername(ctx, demo.Username)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return created, updated, fmt.Errorf("find %s: %w", demo.Username, err)
			}
			user := demo
			user.PasswordHash = string(hash)
			if err := s.userRepo.Create(ctx, &user); err != nil {
				return created, updated, fmt.Errorf("create %s: %w", demo.Username, err)
			}
			created++
			continue
		}

		existing.DisplayName = demo.DisplayName
		existing.Bio = demo.Bio
		existing.AvatarURL = demo.AvatarURL
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return created, updated, fmt.Errorf("update %s: %w", demo.Username, err)
		}
		updated++
	}

	return created, updated, nil
}
