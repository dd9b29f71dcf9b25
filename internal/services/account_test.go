package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/smolin2019/vehicle-auction-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAccountService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserGetter(ctrl)
	mockBalances := services.NewMockBalanceAdder(ctrl)
	mockBids := services.NewMockBidLister(ctrl)

	svc := services.NewAccountService(mockUsers, mockBalances, mockBids)

	userID := uuid.New()

	t.Run("returns the user record", func(t *testing.T) {
		user := &models.UserDB{UserID: userID, Username: "alice", Balance: 250}
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)

		got, err := svc.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("missing user", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		got, err := svc.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, got)
	})

	t.Run("reader error", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db error"))

		_, err := svc.GetProfile(context.Background(), userID)
		assert.EqualError(t, err, "db error")
	})
}

func TestAccountService_GetBidHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserGetter(ctrl)
	mockBalances := services.NewMockBalanceAdder(ctrl)
	mockBids := services.NewMockBidLister(ctrl)

	svc := services.NewAccountService(mockUsers, mockBalances, mockBids)

	userID := uuid.New()
	bids := []models.BidDB{
		{BidID: uuid.New(), Amount: 1500, BidderID: userID},
		{BidID: uuid.New(), Amount: 1000, BidderID: userID},
	}
	mockBids.EXPECT().ListByBidder(gomock.Any(), userID).Return(bids, nil)

	got, err := svc.GetBidHistory(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, bids, got)
}

func TestAccountService_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserGetter(ctrl)
	mockBalances := services.NewMockBalanceAdder(ctrl)
	mockBids := services.NewMockBidLister(ctrl)

	svc := services.NewAccountService(mockUsers, mockBalances, mockBids)

	userID := uuid.New()

	t.Run("adds to the balance", func(t *testing.T) {
		mockBalances.EXPECT().AddToBalance(gomock.Any(), userID, 100.0).Return(350.0, nil)

		balance, err := svc.Deposit(context.Background(), userID, 100)
		assert.NoError(t, err)
		assert.Equal(t, 350.0, balance)
	})

	t.Run("rejects a non-positive amount without touching the repository", func(t *testing.T) {
		_, err := svc.Deposit(context.Background(), userID, -5)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)

		_, err = svc.Deposit(context.Background(), userID, 0)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	})

	t.Run("missing user", func(t *testing.T) {
		mockBalances.EXPECT().AddToBalance(gomock.Any(), userID, 100.0).Return(0.0, sql.ErrNoRows)

		_, err := svc.Deposit(context.Background(), userID, 100)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		mockBalances.EXPECT().AddToBalance(gomock.Any(), userID, 100.0).Return(0.0, errors.New("db error"))

		_, err := svc.Deposit(context.Background(), userID, 100)
		assert.EqualError(t, err, "db error")
	})
}
