package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"profilehub/internal/cache"
	"profilehub/internal/model"
	"profilehub/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// ProfileService exposes profile reads and updates.
type ProfileService interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, userID uint, upd ProfileUpdate) (*model.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewProfileService builds a ProfileService with repository and cache.
func NewProfileService(userRepo repository.UserRepository, cache *cache.Client) ProfileService {
	return &profileService{userRepo: userRepo, cache: cache}
}

func (s *profileService) cacheKey(username string) string {
	return fmt.Sprintf("profile:%s", username)
}

func (s *profileService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// GetByUsername serves public profile lookups, cache-aside over Redis.
func (s *profileService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(username)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(username), payload, profileCacheTTL)
	}
	return user, nil
}

// Update applies the provided fields to the subject's profile and
// invalidates the cached public view.
func (s *profileService) Update(ctx context.Context, userID uint, upd ProfileUpdate) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if upd.DisplayName != nil {
		user.DisplayName = *upd.DisplayName
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = *upd.AvatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.Username))
	return user, nil
}
