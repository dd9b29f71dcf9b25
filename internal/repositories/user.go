package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given ID, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, balance, is_admin, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil if none exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, balance, is_admin, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll returns every user record, newest first.
func (r *UserReadRepository) ListAll(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, balance, is_admin, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user record.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, balance, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{user.UserID, user.Username, user.Email, user.PasswordHash, user.Balance, user.IsAdmin}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username, user.Email},
		"error", err,
	)

	return err
}

// UpdateProfile overwrites username, email, and balance of an existing user.
// Returns the number of rows affected (0 when the user does not exist).
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, username, email string, balance float64) (int64, error) {
	query := `
		UPDATE users
		SET username = $2, email = $3, balance = $4, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, username, email, balance}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// AddToBalance increases the user's balance and returns the new value.
// Returns sql.ErrNoRows when the user does not exist.
func (r *UserWriteRepository) AddToBalance(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	query := `
		UPDATE users
		SET balance = balance + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, amount)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}
