package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/internal/repository"
	"github.com/jadebook/jadebook/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2);`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
}

func TestFindByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE name = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, &user, result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name).WillReturnError(pgx.ErrNoRows)
		result, err := repo.FindByName(ctx, user.Name)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name).WillReturnError(errors.New("db error"))
		result, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, &user, result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
		result, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.Nil(t, result)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, uid)
		assert.Error(t, err)
	})
}

func TestFetchStreakFields(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	query := regexp.QuoteMeta(`SELECT current_streak, longest_streak, last_entry_date FROM users WHERE id = $1;`)
	uid := uuid.New()
	lastEntry := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		StateResult  *entity.StreakState
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			StateResult: &entity.StreakState{
				CurrentStreak: 5,
				LongestStreak: 9,
				LastEntryDate: &lastEntry,
			},
			MockPrepFunc: func() {
				conn.ExpectQuery(query).
					WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"current_streak", "longest_streak", "last_entry_date"}).
						AddRow(5, 9, &lastEntry))
			},
		},
		{
			Desc:  "no activity yet",
			Error: nil,
			StateResult: &entity.StreakState{
				CurrentStreak: 0,
				LongestStreak: 0,
				LastEntryDate: nil,
			},
			MockPrepFunc: func() {
				conn.ExpectQuery(query).
					WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"current_streak", "longest_streak", "last_entry_date"}).
						AddRow(0, 0, (*time.Time)(nil)))
			},
		},
		{
			Desc:        "user not found",
			Error:       errorvalues.ErrUserNotFound,
			StateResult: nil,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:        "db error",
			Error:       errors.New("fetching streak fields error: db error"),
			StateResult: nil,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			state, err := repo.FetchStreakFields(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.StateResult, state)
		})
	}
}

func TestWriteStreakFields(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	query := regexp.QuoteMeta(`UPDATE users SET current_streak = $1, longest_streak = $2, last_entry_date = $3, updated_at = $4 WHERE id = $5;`)
	uid := uuid.New()
	today := time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, time.June, 11, 13, 37, 0, 0, time.UTC)
	state := &entity.StreakState{
		CurrentStreak: 6,
		LongestStreak: 9,
		LastEntryDate: &today,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				conn.ExpectExec(query).
					WithArgs(state.CurrentStreak, state.LongestStreak, state.LastEntryDate, updatedAt, uid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "user not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				conn.ExpectExec(query).
					WithArgs(state.CurrentStreak, state.LongestStreak, state.LastEntryDate, updatedAt, uid).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("writing streak fields error: db error"),
			MockPrepFunc: func() {
				conn.ExpectExec(query).
					WithArgs(state.CurrentStreak, state.LongestStreak, state.LastEntryDate, updatedAt, uid).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := repo.WriteStreakFields(ctx, uid, state, updatedAt)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
