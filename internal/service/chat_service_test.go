package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

func chatFixtureRepo() *fakeChatRepo {
	repo := newFakeChatRepo()
	repo.userIDs[1] = true
	repo.coachIDs[2] = true
	return repo
}

func validChat() *models.Chat {
	return &models.Chat{
		UserID:      1,
		CoachID:     2,
		Message:     "I made it through day three without a cigarette",
		SentBy:      models.SentByUser,
		MessageType: models.MessageTypeText,
	}
}

func TestChatServiceCreate(t *testing.T) {
	repo := chatFixtureRepo()
	publisher := &fakePublisher{}
	svc := NewChatService(repo, publisher)

	t.Run("stores, stamps and publishes", func(t *testing.T) {
		chat := validChat()
		chat.ID = 500
		id, err := svc.Create(chat)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		assert.Equal(t, id, chat.ID)
		assert.False(t, chat.CreatedAt.IsZero())

		require.Len(t, publisher.published, 1)
		assert.Equal(t, id, publisher.published[0].ID)
	})

	t.Run("normalizes sentBy and messageType casing", func(t *testing.T) {
		chat := validChat()
		chat.SentBy = " Coach "
		chat.MessageType = "TEXT"
		id, err := svc.Create(chat)
		require.NoError(t, err)

		stored, err := svc.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, models.SentByCoach, stored.SentBy)
		assert.Equal(t, models.MessageTypeText, stored.MessageType)
	})

	t.Run("rejects an unknown sender label", func(t *testing.T) {
		chat := validChat()
		chat.SentBy = "system"
		_, err := svc.Create(chat)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("rejects a message over the limit", func(t *testing.T) {
		chat := validChat()
		chat.Message = strings.Repeat("a", 1001)
		_, err := svc.Create(chat)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("rejects a whitespace-only message", func(t *testing.T) {
		before := repo.createCalls
		chat := validChat()
		chat.Message = "   "
		_, err := svc.Create(chat)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, before, repo.createCalls)
	})

	t.Run("rejects a missing user or coach", func(t *testing.T) {
		chat := validChat()
		chat.UserID = 99
		_, err := svc.Create(chat)
		require.Error(t, err)
		assert.True(t, IsValidation(err))

		chat = validChat()
		chat.CoachID = 99
		_, err = svc.Create(chat)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestChatServiceCreateSurvivesPublishFailure(t *testing.T) {
	repo := chatFixtureRepo()
	publisher := &fakePublisher{err: errors.New("broker down")}
	svc := NewChatService(repo, publisher)

	id, err := svc.Create(validChat())
	require.NoError(t, err)

	stored, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID)
}

func TestChatServiceCreateWithoutPublisher(t *testing.T) {
	svc := NewChatService(chatFixtureRepo(), nil)
	_, err := svc.Create(validChat())
	assert.NoError(t, err)
}

func TestChatServiceUpdateKeepsOwnersImmutable(t *testing.T) {
	repo := chatFixtureRepo()
	svc := NewChatService(repo, nil)

	id, err := svc.Create(validChat())
	require.NoError(t, err)

	update := validChat()
	update.ID = id
	update.UserID = 777
	update.CoachID = 888
	update.Message = "Edited message"
	update.IsRead = true
	affected, err := svc.Update(update)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	stored, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.UserID)
	assert.Equal(t, int64(2), stored.CoachID)
	assert.Equal(t, "Edited message", stored.Message)
	assert.True(t, stored.IsRead)
}

func TestChatServiceSetRead(t *testing.T) {
	repo := chatFixtureRepo()
	svc := NewChatService(repo, nil)

	id, err := svc.Create(validChat())
	require.NoError(t, err)

	require.NoError(t, svc.SetRead(id, true))
	stored, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)

	require.NoError(t, svc.SetRead(id, false))
	stored, err = svc.GetByID(id)
	require.NoError(t, err)
	assert.False(t, stored.IsRead)

	assert.ErrorIs(t, svc.SetRead(999, true), ErrNotFound)
}

func TestChatServiceDelete(t *testing.T) {
	repo := chatFixtureRepo()
	svc := NewChatService(repo, nil)

	id, err := svc.Create(validChat())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(id))
	assert.ErrorIs(t, svc.Delete(id), ErrNotFound)
}

func TestChatServiceSearchWithPaging(t *testing.T) {
	repo := chatFixtureRepo()
	svc := NewChatService(repo, nil)

	for i := 0; i < 15; i++ {
		_, err := svc.Create(validChat())
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		chat := validChat()
		chat.MessageType = models.MessageTypeImage
		_, err := svc.Create(chat)
		require.NoError(t, err)
	}

	result, err := svc.SearchWithPaging(repository.ChatFilter{MessageType: models.MessageTypeText}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, result.TotalItems)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Items, 10)
	assert.True(t, result.HasNext)
	assert.False(t, result.HasPrevious)

	second, err := svc.SearchWithPaging(repository.ChatFilter{MessageType: models.MessageTypeText}, 2, 10)
	require.NoError(t, err)
	assert.Len(t, second.Items, 5)
	assert.True(t, second.HasPrevious)
	assert.False(t, second.HasNext)

	isRead := false
	filtered, err := svc.Search(repository.ChatFilter{SentBy: models.SentByUser, IsRead: &isRead})
	require.NoError(t, err)
	assert.Len(t, filtered, 20)
}
