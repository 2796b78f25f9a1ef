package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

type ChatInput struct {
	UserID        int64      `json:"userId" binding:"required,gt=0"`
	CoachID       int64      `json:"coachId" binding:"required,gt=0"`
	Message       string     `json:"message" binding:"required,max=1000"`
	SentBy        string     `json:"sentBy" binding:"required"`
	MessageType   string     `json:"messageType" binding:"required"`
	IsRead        bool       `json:"isRead"`
	AttachmentURL *string    `json:"attachmentUrl" binding:"omitempty,url"`
	ResponseTime  *time.Time `json:"responseTime"`
}

type ChatUpdateInput struct {
	Message       string     `json:"message" binding:"required,max=1000"`
	SentBy        string     `json:"sentBy" binding:"required"`
	MessageType   string     `json:"messageType" binding:"required"`
	IsRead        bool       `json:"isRead"`
	AttachmentURL *string    `json:"attachmentUrl" binding:"omitempty,url"`
	ResponseTime  *time.Time `json:"responseTime"`
}

// chatFilterFromQuery reads the optional search filters. A missing isRead
// means "both"; anything else parses as a bool.
func chatFilterFromQuery(c *gin.Context) repository.ChatFilter {
	filter := repository.ChatFilter{
		MessageType: c.Query("messageType"),
		SentBy:      c.Query("sentBy"),
	}
	if raw, ok := c.GetQuery("isRead"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.IsRead = &v
		}
	}
	return filter
}

// GetAllChats is the handler for GET /api/chats.
func (h *Handlers) GetAllChats(c *gin.Context) {
	chats, err := h.Chats.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

// GetChatByID is the handler for GET /api/chats/:id.
func (h *Handlers) GetChatByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	chat, err := h.Chats.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// CreateChat is the handler for POST /api/chats. The stored chat is also
// published to the message bus, fire-and-forget.
func (h *Handlers) CreateChat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	chat := &models.Chat{
		UserID:        input.UserID,
		CoachID:       input.CoachID,
		Message:       input.Message,
		SentBy:        input.SentBy,
		MessageType:   input.MessageType,
		IsRead:        input.IsRead,
		AttachmentURL: input.AttachmentURL,
		ResponseTime:  input.ResponseTime,
	}

	id, err := h.Chats.Create(chat)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Created successfully", "chatId": id})
}

// UpdateChat is the handler for PUT /api/chats/:id. Only the mutable
// fields are copied onto the stored row.
func (h *Handlers) UpdateChat(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var input ChatUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	chat := &models.Chat{
		ID:            id,
		Message:       input.Message,
		SentBy:        input.SentBy,
		MessageType:   input.MessageType,
		IsRead:        input.IsRead,
		AttachmentURL: input.AttachmentURL,
		ResponseTime:  input.ResponseTime,
	}

	if _, err := h.Chats.Update(chat); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated resource successfully"})
}

// MarkChatRead is the handler for PATCH /api/chats/:id/read.
func (h *Handlers) MarkChatRead(c *gin.Context) {
	h.setChatRead(c, true)
}

// MarkChatUnread is the handler for PATCH /api/chats/:id/unread.
func (h *Handlers) MarkChatUnread(c *gin.Context) {
	h.setChatRead(c, false)
}

func (h *Handlers) setChatRead(c *gin.Context, isRead bool) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Chats.SetRead(id, isRead); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated resource successfully"})
}

// DeleteChat is the handler for DELETE /api/chats/:id.
func (h *Handlers) DeleteChat(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Chats.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delete resource successfully"})
}

// SearchChats is the handler for
// GET /api/chats/search?messageType=&sentBy=&isRead=.
func (h *Handlers) SearchChats(c *gin.Context) {
	chats, err := h.Chats.Search(chatFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

// GetChatsWithPaging is the handler for GET /api/chats/paging/:page/:size;
// the same optional filters narrow the paged set.
func (h *Handlers) GetChatsWithPaging(c *gin.Context) {
	page, _ := strconv.Atoi(c.Param("page"))
	size, _ := strconv.Atoi(c.Param("size"))

	result, err := h.Chats.SearchWithPaging(chatFilterFromQuery(c), page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
