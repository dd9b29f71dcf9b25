package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// Error variables
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidAmount = errors.New("invalid amount")
)

// UserGetter resolves a user record by ID.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// BalanceAdder increases a user's balance and returns the new value.
type BalanceAdder interface {
	AddToBalance(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// BidLister returns a user's bid history.
type BidLister interface {
	ListByBidder(ctx context.Context, bidderID uuid.UUID) ([]models.BidDB, error)
}

// AccountService handles the authenticated user's own profile, bid history,
// and balance top-up.
type AccountService struct {
	users    UserGetter
	balances BalanceAdder
	bids     BidLister
}

// NewAccountService creates a new AccountService.
func NewAccountService(users UserGetter, balances BalanceAdder, bids BidLister) *AccountService {
	return &AccountService{
		users:    users,
		balances: balances,
		bids:     bids,
	}
}

// GetProfile returns the user's own record.
func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetBidHistory returns every bid the user has placed.
func (s *AccountService) GetBidHistory(ctx context.Context, userID uuid.UUID) ([]models.BidDB, error) {
	bids, err := s.bids.ListByBidder(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get bid history", "user_id", userID, "error", err)
		return nil, err
	}
	return bids, nil
}

// Deposit adds funds to the user's balance and returns the new balance.
// The amount must be strictly positive.
func (s *AccountService) Deposit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.balances.AddToBalance(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		logger.Log.Errorw("failed to add to balance", "user_id", userID, "amount", amount, "error", err)
		return 0, err
	}

	return balance, nil
}
