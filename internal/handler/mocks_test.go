package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"userbase/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, name, password string) (string, error) {
	args := m.Called(ctx, name, password)
	return args.String(0), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, name, password string) (uint, error) {
	args := m.Called(ctx, name, password)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.UserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserView), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.UserView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserView), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id uint, name, password *string) error {
	args := m.Called(ctx, id, name, password)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
