package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokequit/smokequit-api/internal/models"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var chatColumns = []string{
	"ch.id", "ch.user_id", "ch.coach_id", "ch.message", "ch.sent_by", "ch.message_type",
	"ch.is_read", "ch.attachment_url", "ch.response_time", "ch.created_at",
	"co.id", "co.full_name", "co.email", "co.phone_number", "co.bio", "co.created_at",
}

func chatRow(rows *sqlmock.Rows, id int64, messageType string) *sqlmock.Rows {
	now := time.Now().UTC()
	return rows.AddRow(
		id, int64(1), int64(2), "hello", models.SentByUser, messageType,
		false, nil, nil, now,
		int64(2), "Dana Reeves", "dana@example.com", nil, nil, now,
	)
}

func TestChatRepositoryGetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewChatRepository(db)

	t.Run("found with coach attached", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE ch.id = ?")).
			WithArgs(int64(5)).
			WillReturnRows(chatRow(sqlmock.NewRows(chatColumns), 5, models.MessageTypeText))

		chat, err := repo.GetByID(5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), chat.ID)
		require.NotNil(t, chat.Coach)
		assert.Equal(t, "Dana Reeves", chat.Coach.FullName)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE ch.id = ?")).
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(404)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepositoryCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewChatRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chats")).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(&models.Chat{
		UserID:      1,
		CoachID:     2,
		Message:     "hello",
		SentBy:      models.SentByUser,
		MessageType: models.MessageTypeText,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepositoryUpdate(t *testing.T) {
	chat := &models.Chat{ID: 5, Message: "edited", SentBy: models.SentByCoach, MessageType: models.MessageTypeText}

	t.Run("locks the row then writes", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewChatRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM chats WHERE id = ? FOR UPDATE")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE chats SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		affected, err := repo.Update(chat)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("vanished row reports zero without writing", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewChatRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM chats WHERE id = ? FOR UPDATE")).
			WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		affected, err := repo.Update(chat)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepositoryRemove(t *testing.T) {
	db, mock := newMock(t)
	repo := NewChatRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chats WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chats WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Remove(5)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(5)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepositorySearchFiltersAreIndependent(t *testing.T) {
	db, mock := newMock(t)
	repo := NewChatRepository(db)

	t.Run("read flag alone", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND ch.is_read = ?")).
			WithArgs(true).
			WillReturnRows(chatRow(sqlmock.NewRows(chatColumns), 1, models.MessageTypeText))

		isRead := true
		chats, err := repo.Search(ChatFilter{IsRead: &isRead})
		require.NoError(t, err)
		assert.Len(t, chats, 1)
	})

	t.Run("message type alone, case folded", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND LOWER(ch.message_type) = ?")).
			WithArgs("image").
			WillReturnRows(sqlmock.NewRows(chatColumns))

		chats, err := repo.Search(ChatFilter{MessageType: " Image "})
		require.NoError(t, err)
		assert.Empty(t, chats)
	})

	t.Run("sender and type combined", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND LOWER(ch.message_type) = ? AND LOWER(ch.sent_by) = ?")).
			WithArgs("text", "coach").
			WillReturnRows(chatRow(sqlmock.NewRows(chatColumns), 1, models.MessageTypeText))

		chats, err := repo.Search(ChatFilter{MessageType: "text", SentBy: "coach"})
		require.NoError(t, err)
		assert.Len(t, chats, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepositorySearchWithPaging(t *testing.T) {
	db, mock := newMock(t)
	repo := NewChatRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM chats ch WHERE 1=1 AND LOWER(ch.message_type) = ?")).
		WithArgs("text").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	rows := sqlmock.NewRows(chatColumns)
	for i := 1; i <= 10; i++ {
		chatRow(rows, int64(i), models.MessageTypeText)
	}
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT ? OFFSET ?")).
		WithArgs("text", 10, 0).
		WillReturnRows(rows)

	result, err := repo.SearchWithPaging(ChatFilter{MessageType: models.MessageTypeText}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, result.TotalItems)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Items, 10)
	assert.True(t, result.HasNext)
	assert.False(t, result.HasPrevious)
	assert.NoError(t, mock.ExpectationsWereMet())
}
