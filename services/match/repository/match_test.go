package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
)

func setupMatchRepoTest(t *testing.T) (*MatchRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &MatchRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func matchRows(m *models.Match) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "trip_id", "delivery_request_id", "traveler_id", "business_id",
		"status", "pickup_confirmed_at", "delivery_confirmed_at", "created_at", "updated_at",
	}).AddRow(
		m.ID, m.TripID, m.DeliveryRequestID, m.TravelerID, m.BusinessID,
		string(m.Status), m.PickupConfirmedAt, m.DeliveryConfirmedAt, m.CreatedAt, m.UpdatedAt,
	)
}

func sampleMatch() *models.Match {
	return &models.Match{
		ID:                "match-1",
		TripID:            "trip-1",
		DeliveryRequestID: "req-1",
		TravelerID:        "traveler-1",
		BusinessID:        "business-1",
		Status:            models.MatchStatusPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func TestGetMatch(t *testing.T) {
	testCases := []struct {
		name       string
		matchID    string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, m *models.Match, err error)
	}{
		{
			name:    "Success",
			matchID: "match-1",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM matches WHERE id").
					WithArgs("match-1").
					WillReturnRows(matchRows(sampleMatch()))
			},
			assertFunc: func(t *testing.T, m *models.Match, err error) {
				assert.NoError(t, err)
				require.NotNil(t, m)
				assert.Equal(t, "match-1", m.ID)
				assert.Equal(t, models.MatchStatusPending, m.Status)
			},
		},
		{
			name:    "Not found",
			matchID: "missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM matches WHERE id").
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, m *models.Match, err error) {
				assert.ErrorIs(t, err, match.ErrMatchNotFound)
				assert.Nil(t, m)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMatchRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			m, err := repo.GetMatch(context.Background(), tc.matchID)
			tc.assertFunc(t, m, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateMatch_UniqueViolation(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO matches").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "matches_trip_request_key"})

	// Execute
	err := repo.CreateMatch(context.Background(), sampleMatch())

	// Assert
	assert.ErrorIs(t, err, match.ErrDuplicateMatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMatch_Success(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO matches").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Execute
	err := repo.CreateMatch(context.Background(), sampleMatch())

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		from        models.MatchStatus
		to          models.MatchStatus
		confirmedAt *time.Time
		mockSetup   func(mock sqlmock.Sqlmock)
		wantOK      bool
	}{
		{
			name: "Accept wins the compare-and-set",
			from: models.MatchStatusPending,
			to:   models.MatchStatusAccepted,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE matches SET status").
					WithArgs(string(models.MatchStatusAccepted), "match-1", string(models.MatchStatusPending)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantOK: true,
		},
		{
			name: "Stale accept loses",
			from: models.MatchStatusPending,
			to:   models.MatchStatusAccepted,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE matches SET status").
					WithArgs(string(models.MatchStatusAccepted), "match-1", string(models.MatchStatusPending)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantOK: false,
		},
		{
			name:        "Pickup stamps pickup_confirmed_at",
			from:        models.MatchStatusAccepted,
			to:          models.MatchStatusPickupConfirmed,
			confirmedAt: &now,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE matches SET status = \\$1, pickup_confirmed_at").
					WithArgs(string(models.MatchStatusPickupConfirmed), "match-1", string(models.MatchStatusAccepted), now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantOK: true,
		},
		{
			name:        "Completion stamps delivery_confirmed_at",
			from:        models.MatchStatusPickupConfirmed,
			to:          models.MatchStatusCompleted,
			confirmedAt: &now,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE matches SET status = \\$1, delivery_confirmed_at").
					WithArgs(string(models.MatchStatusCompleted), "match-1", string(models.MatchStatusPickupConfirmed), now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupMatchRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			ok, err := repo.TransitionStatus(context.Background(), "match-1", tc.from, tc.to, tc.confirmedAt)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransitionStatus_DBError(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE matches SET status").
		WillReturnError(errors.New("connection reset"))

	// Execute
	ok, err := repo.TransitionStatus(context.Background(), "match-1",
		models.MatchStatusPending, models.MatchStatusAccepted, nil)

	// Assert
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestGetMatchByPair_NotFound(t *testing.T) {
	// Setup
	repo, mock, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM matches WHERE trip_id").
		WithArgs("trip-1", "req-1").
		WillReturnError(sql.ErrNoRows)

	// Execute
	m, err := repo.GetMatchByPair(context.Background(), "trip-1", "req-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrMatchNotFound)
	assert.Nil(t, m)
}
