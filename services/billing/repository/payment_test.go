package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/billing"
)

func setupBillingRepoTest(t *testing.T) (*BillingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &BillingRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func paymentRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "match_id", "business_id", "traveler_id", "amount", "commission",
		"traveler_earnings", "payment_reference", "payment_status", "paid_at",
		"escrow_released_at", "created_at",
	}).AddRow(
		"payment-1", "match-1", "business-1", "traveler-1", 5000.0, 250.0,
		4750.0, "ref-1", "paid", now, nil, now,
	)
}

func TestGetPaymentByReference(t *testing.T) {
	testCases := []struct {
		name       string
		reference  string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, p *models.Payment, err error)
	}{
		{
			name:      "Success",
			reference: "ref-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM payments WHERE payment_reference").
					WithArgs("ref-1").
					WillReturnRows(paymentRows())
			},
			assertFunc: func(t *testing.T, p *models.Payment, err error) {
				assert.NoError(t, err)
				require.NotNil(t, p)
				assert.Equal(t, "payment-1", p.ID)
				assert.Equal(t, models.PaymentStatusPaid, p.Status)
				assert.InDelta(t, 4750, p.TravelerEarnings, 0.0001)
			},
		},
		{
			name:      "Not found",
			reference: "missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM payments WHERE payment_reference").
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, p *models.Payment, err error) {
				assert.ErrorIs(t, err, billing.ErrPaymentNotFound)
				assert.Nil(t, p)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBillingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			p, err := repo.GetPaymentByReference(context.Background(), tc.reference)
			tc.assertFunc(t, p, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkPaid(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantOK    bool
	}{
		{
			name: "Pending payment captured",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE payments SET payment_status").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantOK: true,
		},
		{
			name: "Already captured is a no-op",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE payments SET payment_status").
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

			ok, err := repo.MarkPaid(context.Background(), "ref-1", time.Now())
			assert.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkEscrowReleased(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantOK    bool
	}{
		{
			name: "First release stamps the payment",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE payments SET escrow_released_at").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantOK: true,
		},
		{
			name: "Second release finds the stamp set",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE payments SET escrow_released_at").
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

			ok, err := repo.MarkEscrowReleased(context.Background(), "payment-1", time.Now())
			assert.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHasPaidPayment(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupBillingRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery("^SELECT EXISTS").
		WithArgs("match-1", string(models.PaymentStatusPaid)).
		WillReturnRows(rows)

	// Execute
	paid, err := repo.HasPaidPayment(context.Background(), "match-1")

	// Assert
	assert.NoError(t, err)
	assert.True(t, paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}
