package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"userbase/internal/auth"
	"userbase/internal/cache"
	apperrors "userbase/internal/errors"
	"userbase/internal/model"
	"userbase/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes the user CRUD operations. Reads go through a
// fail-safe Redis cache; every mutation invalidates the affected entry.
type UserService interface {
	CreateUser(ctx context.Context, name, password string) (uint, error)
	GetUser(ctx context.Context, id uint) (*model.UserView, error)
	ListUsers(ctx context.Context) ([]model.UserView, error)
	UpdateUser(ctx context.Context, id uint, name, password *string) error
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
	cache  *cache.Client
}

// NewUserService builds a UserService with repository, hasher and cache.
func NewUserService(repo repository.UserRepository, hasher *auth.PasswordHasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser hashes the password first and only then persists, so a
// plaintext password can never reach the store.
func (s *userService) CreateUser(ctx context.Context, name, password string) (uint, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("check name availability: %w", err)
	}
	if existing != nil {
		return 0, apperrors.ErrNameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, name, hash)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetUser returns the projection for id, consulting the cache first.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.UserView, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.UserView
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	view, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if payload, err := json.Marshal(view); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return view, nil
}

// ListUsers returns every user, ordered by id ascending.
func (s *userService) ListUsers(ctx context.Context) ([]model.UserView, error) {
	return s.repo.List(ctx)
}

// UpdateUser changes name and/or password. It rejects an empty update
// before any repository call, and re-hashes only when a new password is
// actually provided.
func (s *userService) UpdateUser(ctx context.Context, id uint, name, password *string) error {
	if name == nil && password == nil {
		return apperrors.ErrEmptyUpdate
	}

	var passwordHash *string
	if password != nil {
		hash, err := s.hasher.Hash(*password)
		if err != nil {
			return err
		}
		passwordHash = &hash
	}

	matched, err := s.repo.Update(ctx, id, name, passwordHash)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrUserNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// DeleteUser physically removes the user.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	matched, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrUserNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
