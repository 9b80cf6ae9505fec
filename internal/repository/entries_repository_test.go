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

var entryColumns = []string{"id", "user_id", "title", "content", "tags", "pinned", "entry_date", "created_at", "updated_at"}

func TestCreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO entries (user_id, title, content, tags, entry_date) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	entryID := uuid.New()
	entry := entity.Entry{
		UserID:    uuid.New(),
		Title:     "test_title",
		Content:   "test_content",
		Tags:      []string{"daily"},
		EntryDate: time.Now(),
	}
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(entry.UserID, entry.Title, entry.Content, entry.Tags, entry.EntryDate).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(entryID))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(entry.UserID, entry.Title, entry.Content, entry.Tags, entry.EntryDate).
					WillReturnError(&pgconn.PgError{
						Code: "23503",
					})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating entry db error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(entry.UserID, entry.Title, entry.Content, entry.Tags, entry.EntryDate).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			id, err := entriesRepo.Create(ctx, &entry)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, entryID, id)
			}
		})
	}
}

func TestGetEntryByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT user_id, title, content, tags, pinned, entry_date, created_at, updated_at FROM entries WHERE id = $1;`)
	now := time.Now()
	entry := entity.Entry{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     "test_title",
		Content:   "test_content",
		Tags:      []string{"daily", "morning"},
		Pinned:    true,
		EntryDate: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "title", "content", "tags", "pinned", "entry_date", "created_at", "updated_at"}).
				AddRow(entry.UserID, entry.Title, entry.Content, entry.Tags, entry.Pinned, entry.EntryDate, entry.CreatedAt, entry.UpdatedAt))
		result, err := entriesRepo.GetByID(context.Background(), entry.ID)
		assert.NoError(t, err)
		assert.Equal(t, &entry, result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(entry.ID).WillReturnError(pgx.ErrNoRows)
		result, err := entriesRepo.GetByID(context.Background(), entry.ID)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(entry.ID).WillReturnError(errors.New("db error"))
		result, err := entriesRepo.GetByID(context.Background(), entry.ID)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestGetEntriesByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, title, content, tags, pinned, entry_date, created_at, updated_at
		FROM entries WHERE user_id = $1 ORDER BY pinned DESC, entry_date DESC LIMIT $2 OFFSET $3;`)
	uid := uuid.New()
	now := time.Now()
	returnedEntries := []*entity.Entry{
		{
			ID:        uuid.New(),
			UserID:    uid,
			Title:     "pinned_one",
			Content:   "content",
			Tags:      []string{"daily"},
			Pinned:    true,
			EntryDate: now,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			UserID:    uid,
			Title:     "regular_one",
			Content:   "content",
			Tags:      []string{},
			EntryDate: now.Add(-24 * time.Hour),
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
	}
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(entryColumns)
		for _, e := range returnedEntries {
			rows.AddRow(e.ID, e.UserID, e.Title, e.Content, e.Tags, e.Pinned, e.EntryDate, e.CreatedAt, e.UpdatedAt)
		}
		mock.ExpectQuery(query).WithArgs(uid, 10, 0).WillReturnRows(rows)
		result, err := entriesRepo.GetByUserID(context.Background(), uid, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, returnedEntries, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, 10, 0).WillReturnError(errors.New("db error"))
		result, err := entriesRepo.GetByUserID(context.Background(), uid, 10, 0)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestUpdateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE entries SET title = $1, content = $2, tags = $3, updated_at = NOW() WHERE id = $4;`)
	entry := entity.Entry{
		ID:      uuid.New(),
		Title:   "new_title",
		Content: "new_content",
		Tags:    []string{"evening"},
	}
	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entry.Title, entry.Content, entry.Tags, entry.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, entriesRepo.Update(context.Background(), &entry))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entry.Title, entry.Content, entry.Tags, entry.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, entriesRepo.Update(context.Background(), &entry), errorvalues.ErrEntryNotFound)
	})
}

func TestSetEntryPinned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE entries SET pinned = $1, updated_at = NOW() WHERE id = $2;`)
	entryID := uuid.New()
	t.Run("pinned", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(true, entryID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, entriesRepo.SetPinned(context.Background(), entryID, true))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(false, entryID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, entriesRepo.SetPinned(context.Background(), entryID, false), errorvalues.ErrEntryNotFound)
	})
}

func TestDeleteEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM entries WHERE id = $1;`)
	entryID := uuid.New()
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(entryID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, entriesRepo.Delete(context.Background(), entryID))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(entryID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, entriesRepo.Delete(context.Background(), entryID), errorvalues.ErrEntryNotFound)
	})
}

func TestSearchEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, title, content, tags, pinned, entry_date, created_at, updated_at
		FROM entries WHERE user_id = $1
		AND to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', $2)
		ORDER BY entry_date DESC;`)
	uid := uuid.New()
	now := time.Now()
	returnedEntries := []*entity.Entry{
		{
			ID:        uuid.New(),
			UserID:    uid,
			Title:     "morning walk",
			Content:   "walked around the lake",
			Tags:      []string{"outdoors"},
			EntryDate: now,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(entryColumns)
		for _, e := range returnedEntries {
			rows.AddRow(e.ID, e.UserID, e.Title, e.Content, e.Tags, e.Pinned, e.EntryDate, e.CreatedAt, e.UpdatedAt)
		}
		mock.ExpectQuery(query).WithArgs(uid, "walk").WillReturnRows(rows)
		result, err := entriesRepo.Search(context.Background(), uid, "walk")
		assert.NoError(t, err)
		assert.Equal(t, returnedEntries, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, "walk").WillReturnError(errors.New("db error"))
		result, err := entriesRepo.Search(context.Background(), uid, "walk")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestGetEntriesByTag(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, title, content, tags, pinned, entry_date, created_at, updated_at
		FROM entries WHERE user_id = $1 AND $2 = ANY(tags) ORDER BY entry_date DESC;`)
	uid := uuid.New()
	now := time.Now()
	returnedEntries := []*entity.Entry{
		{
			ID:        uuid.New(),
			UserID:    uid,
			Title:     "gratitude",
			Content:   "three things",
			Tags:      []string{"gratitude", "daily"},
			EntryDate: now,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(entryColumns)
		for _, e := range returnedEntries {
			rows.AddRow(e.ID, e.UserID, e.Title, e.Content, e.Tags, e.Pinned, e.EntryDate, e.CreatedAt, e.UpdatedAt)
		}
		mock.ExpectQuery(query).WithArgs(uid, "gratitude").WillReturnRows(rows)
		result, err := entriesRepo.GetByTag(context.Background(), uid, "gratitude")
		assert.NoError(t, err)
		assert.Equal(t, returnedEntries, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, "gratitude").WillReturnError(errors.New("db error"))
		result, err := entriesRepo.GetByTag(context.Background(), uid, "gratitude")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
