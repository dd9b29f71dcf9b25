package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/jwt"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string, isAdmin bool) (string, error)
}

// ClaimsParser extracts claims from a token string.
type ClaimsParser interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenRevoker records a token as logged out for the given TTL.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenString string, ttl time.Duration) error
}

// AuthService handles registration, login, and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	parser  ClaimsParser
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, parser ClaimsParser, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		parser:  parser,
		revoker: revoker,
	}
}

// Register registers a new user with a hashed password and zero balance.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	newUser := models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := svc.writer.Save(ctx, newUser); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token plus the user record.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the token for its remaining lifetime. An unparsable or
// already-expired token is a no-op: there is no session left to end.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := svc.parser.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Infow("logout with invalid token, nothing to revoke", "err", err)
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if err := svc.revoker.Revoke(ctx, tokenString, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "user_id", claims.UserID, "err", err)
		return err
	}

	return nil
}
