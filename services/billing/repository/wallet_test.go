package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWallet_AbsentReadsAsZero(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupBillingRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id").
		WithArgs("traveler-1").
		WillReturnError(sql.ErrNoRows)

	// Execute
	w, err := repo.GetWallet(context.Background(), "traveler-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "traveler-1", w.UserID)
	assert.Zero(t, w.Balance)
	assert.Zero(t, w.PendingBalance)
}

func TestGetWallet_Existing(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupBillingRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"user_id", "balance", "pending_balance", "total_earned", "updated_at"}).
		AddRow("traveler-1", 4750.0, 2000.0, 6750.0, time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id").
		WithArgs("traveler-1").
		WillReturnRows(rows)

	// Execute
	w, err := repo.GetWallet(context.Background(), "traveler-1")

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 4750, w.Balance, 0.0001)
	assert.InDelta(t, 2000, w.PendingBalance, 0.0001)
	assert.InDelta(t, 6750, w.TotalEarned, 0.0001)
}

func TestCreditPending_UpsertsWallet(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupBillingRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO wallets").
		WithArgs("traveler-1", 4750.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Execute
	err := repo.CreditPending(context.Background(), "traveler-1", 4750)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseToAvailable(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE wallets SET pending_balance").
					WithArgs("traveler-1", 4750.0).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: false,
		},
		{
			name: "Wallet missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE wallets SET pending_balance").
					WithArgs("traveler-1", 4750.0).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBillingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.ReleaseToAvailable(context.Background(), "traveler-1", 4750)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDebitAvailable(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantOK    bool
	}{
		{
			name: "Sufficient funds",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE wallets SET balance").
					WithArgs("traveler-1", 1000.0).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantOK: true,
		},
		{
			name: "Insufficient funds",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE wallets SET balance").
					WithArgs("traveler-1", 1000.0).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBillingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			ok, err := repo.DebitAvailable(context.Background(), "traveler-1", 1000)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
