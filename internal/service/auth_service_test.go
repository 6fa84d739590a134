package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"userbase/internal/auth"
	apperrors "userbase/internal/errors"
	"userbase/internal/model"
)

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)
	storedHash, _ := hasher.Hash("pw1")

	tests := []struct {
		name          string
		loginName     string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:      "successful login",
			loginName: "alice",
			password:  "pw1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByName", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Name:         "alice",
					PasswordHash: storedHash,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:      "unknown user",
			loginName: "nobody",
			password:  "pw1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByName", mock.Anything, "nobody").Return(nil, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			loginName: "alice",
			password:  "pw2",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByName", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Name:         "alice",
					PasswordHash: storedHash,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:      "store failure surfaces",
			loginName: "alice",
			password:  "pw1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByName", mock.Anything, "alice").Return(nil, errors.New("connection refused"))
			},
			expectedError: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, hasher, jwtService)

			token, err := svc.Login(context.Background(), tt.loginName, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				// The token must round-trip back to the login name.
				identity, err := jwtService.Validate(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.loginName, identity)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_CredentialFailuresIndistinguishable(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)
	storedHash, _ := hasher.Hash("pw1")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByName", mock.Anything, "alice").Return(&model.User{
		ID: 1, Name: "alice", PasswordHash: storedHash,
	}, nil)
	mockRepo.On("FindByName", mock.Anything, "nobody").Return(nil, nil)

	svc := NewAuthService(mockRepo, hasher, auth.NewJWTService("test-secret"))

	_, errWrongPassword := svc.Login(context.Background(), "alice", "pw2")
	_, errUnknownUser := svc.Login(context.Background(), "nobody", "pw1")

	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}
