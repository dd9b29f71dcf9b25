package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/jwt"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockParser := services.NewMockClaimsParser(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockParser, mockRevoker)

	tests := []struct {
		name         string
		username     string
		password     string
		email        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful registration",
			username:     "alice",
			password:     "pass123",
			email:        "alice@example.com",
			existingUser: nil,
			wantErr:      nil,
		},
		{
			name:         "username already taken",
			username:     "bob",
			password:     "pass123",
			email:        "bob@example.com",
			existingUser: &models.UserDB{UserID: uuid.New(), Username: "bob"},
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user models.UserDB) error {
						assert.Equal(t, tt.username, user.Username)
						assert.Equal(t, tt.email, user.Email)
						assert.NotEqual(t, uuid.Nil, user.UserID)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
						assert.False(t, user.IsAdmin)
						return tt.writerErr
					})
			}

			err := svc.Register(context.Background(), tt.username, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockParser := services.NewMockClaimsParser(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockParser, mockRevoker)

	userID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	storedUser := &models.UserDB{
		UserID:       userID,
		Username:     "alice",
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		jwtToken  string
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			password:  "pass123",
			user:      storedUser,
			jwtToken:  "token123",
			wantToken: "token123",
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "pass123",
			user:     nil,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			user:     storedUser,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "jwt generation error",
			username: "alice",
			password: "pass123",
			user:     storedUser,
			jwtErr:   errors.New("sign error"),
			wantErr:  errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.readerErr == nil && tt.user != nil && tt.password == "pass123" {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.Username, tt.user.IsAdmin).
					Return(tt.jwtToken, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockParser := services.NewMockClaimsParser(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockParser, mockRevoker)

	t.Run("revokes token for its remaining lifetime", func(t *testing.T) {
		claims := &jwt.Claims{
			UserID:    uuid.New(),
			Username:  "alice",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		mockParser.EXPECT().GetClaims(gomock.Any(), "token123").Return(claims, nil)
		mockRevoker.EXPECT().
			Revoke(gomock.Any(), "token123", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
				assert.Greater(t, ttl, 59*time.Minute)
				assert.LessOrEqual(t, ttl, time.Hour)
				return nil
			})

		assert.NoError(t, svc.Logout(context.Background(), "token123"))
	})

	t.Run("invalid token is a no-op", func(t *testing.T) {
		mockParser.EXPECT().GetClaims(gomock.Any(), "garbage").Return(nil, errors.New("parse error"))

		assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	})

	t.Run("revoker error is returned", func(t *testing.T) {
		claims := &jwt.Claims{UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Minute)}
		mockParser.EXPECT().GetClaims(gomock.Any(), "token456").Return(claims, nil)
		mockRevoker.EXPECT().Revoke(gomock.Any(), "token456", gomock.Any()).Return(errors.New("redis down"))

		assert.EqualError(t, svc.Logout(context.Background(), "token456"), "redis down")
	})
}
