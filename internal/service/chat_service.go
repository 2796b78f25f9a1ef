package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

// ChatRepository is the aggregate contract ChatService runs on.
type ChatRepository interface {
	GetAll() ([]*models.Chat, error)
	GetByID(id int64) (*models.Chat, error)
	UserExists(userID int64) (bool, error)
	CoachExists(coachID int64) (bool, error)
	Create(c *models.Chat) (int64, error)
	Update(c *models.Chat) (int64, error)
	Remove(id int64) (bool, error)
	Search(f repository.ChatFilter) ([]*models.Chat, error)
	GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Chat], error)
	SearchWithPaging(f repository.ChatFilter, currentPage, pageSize int) (models.PaginationResult[*models.Chat], error)
}

// ChatPublisher pushes a freshly created chat onto the message bus.
// Sends are fire-and-forget; a failed publish never fails the request.
type ChatPublisher interface {
	Publish(chat *models.Chat) error
}

type ChatService struct {
	repo      ChatRepository
	publisher ChatPublisher
}

// NewChatService wires the repository and an optional publisher (nil is
// fine when no bus is configured, e.g. in tests).
func NewChatService(repo ChatRepository, publisher ChatPublisher) *ChatService {
	return &ChatService{repo: repo, publisher: publisher}
}

func (s *ChatService) GetAll() ([]*models.Chat, error) {
	chats, err := s.repo.GetAll()
	if err != nil {
		return nil, wrap("getting all chats", err)
	}
	return chats, nil
}

func (s *ChatService) GetByID(id int64) (*models.Chat, error) {
	if id <= 0 {
		return nil, invalid("id", "Chat ID must be greater than 0")
	}
	chat, err := s.repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("getting chat", err)
	}
	return chat, nil
}

func (s *ChatService) validate(c *models.Chat) error {
	if c.UserID <= 0 {
		return invalid("userId", "Valid User ID is required")
	}
	if c.CoachID <= 0 {
		return invalid("coachId", "Valid Coach ID is required")
	}
	c.Message = strings.TrimSpace(c.Message)
	if c.Message == "" {
		return invalid("message", "Message is required")
	}
	if len(c.Message) > 1000 {
		return invalid("message", "Message must be between 1 and 1000 characters")
	}
	c.SentBy = strings.ToLower(strings.TrimSpace(c.SentBy))
	if !models.ValidSentBy(c.SentBy) {
		return invalid("sentBy", "SentBy must be either 'user' or 'coach'")
	}
	c.MessageType = strings.ToLower(strings.TrimSpace(c.MessageType))
	if !models.ValidMessageType(c.MessageType) {
		return invalid("messageType", "MessageType must be 'text', 'image', or 'file'")
	}
	return nil
}

// Create validates and stores a new chat, stamps CreatedAt in UTC, resets
// any client-supplied id, and publishes the stored chat to the bus.
func (s *ChatService) Create(c *models.Chat) (int64, error) {
	if err := s.validate(c); err != nil {
		return 0, err
	}

	userOK, err := s.repo.UserExists(c.UserID)
	if err != nil {
		return 0, wrap("checking chat user", err)
	}
	if !userOK {
		return 0, invalid("userId", "User does not exist")
	}
	coachOK, err := s.repo.CoachExists(c.CoachID)
	if err != nil {
		return 0, wrap("checking chat coach", err)
	}
	if !coachOK {
		return 0, invalid("coachId", "Coach does not exist")
	}

	c.ID = 0
	c.CreatedAt = time.Now().UTC()

	id, err := s.repo.Create(c)
	if err != nil {
		return 0, wrap("creating chat", err)
	}
	c.ID = id

	if s.publisher != nil {
		if err := s.publisher.Publish(c); err != nil {
			log.Printf("chat %d stored but publish failed: %v", id, err)
		}
	}
	return id, nil
}

// Update loads the current row and copies only the mutable fields onto it.
// UserID, CoachID and CreatedAt never change after creation.
func (s *ChatService) Update(c *models.Chat) (int64, error) {
	if c.ID <= 0 {
		return 0, invalid("id", "Chat ID must be greater than 0")
	}
	current, err := s.GetByID(c.ID)
	if err != nil {
		return 0, err
	}
	// Validate against the immutable owner ids of the stored row.
	c.UserID = current.UserID
	c.CoachID = current.CoachID
	if err := s.validate(c); err != nil {
		return 0, err
	}

	current.Message = c.Message
	current.SentBy = c.SentBy
	current.MessageType = c.MessageType
	current.IsRead = c.IsRead
	current.AttachmentURL = c.AttachmentURL
	current.ResponseTime = c.ResponseTime

	affected, err := s.repo.Update(current)
	if err != nil {
		return 0, wrap("updating chat", err)
	}
	if affected == 0 {
		return 0, ErrNotFound
	}
	return affected, nil
}

// SetRead flips the read flag; any authorized caller may flip it either way.
func (s *ChatService) SetRead(id int64, isRead bool) error {
	current, err := s.GetByID(id)
	if err != nil {
		return err
	}
	current.IsRead = isRead
	affected, err := s.repo.Update(current)
	if err != nil {
		return wrap("updating chat read flag", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ChatService) Delete(id int64) error {
	if id <= 0 {
		return invalid("id", "Chat ID must be greater than 0")
	}
	removed, err := s.repo.Remove(id)
	if err != nil {
		return wrap("deleting chat", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *ChatService) Search(f repository.ChatFilter) ([]*models.Chat, error) {
	chats, err := s.repo.Search(f)
	if err != nil {
		return nil, wrap("searching chats", err)
	}
	return chats, nil
}

func (s *ChatService) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Chat], error) {
	currentPage, pageSize = normalizePaging(currentPage, pageSize)
	result, err := s.repo.GetAllWithPaging(currentPage, pageSize)
	if err != nil {
		return result, wrap("getting chats with pagination", err)
	}
	return result, nil
}

func (s *ChatService) SearchWithPaging(f repository.ChatFilter, currentPage, pageSize int) (models.PaginationResult[*models.Chat], error) {
	currentPage, pageSize = normalizePaging(currentPage, pageSize)
	result, err := s.repo.SearchWithPaging(f, currentPage, pageSize)
	if err != nil {
		return result, wrap("searching chats with pagination", err)
	}
	return result, nil
}
