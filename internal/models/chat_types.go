package models

import "time"

// Allowed values for Chat.SentBy and Chat.MessageType.
const (
	SentByUser  = "user"
	SentByCoach = "coach"

	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
)

// Chat is the model for the 'chats' table. A row belongs to one user and
// one coach; IsRead is the only mutable flag with no workflow behind it.
type Chat struct {
	ID            int64      `json:"id" db:"id"`
	UserID        int64      `json:"userId" db:"user_id"`
	CoachID       int64      `json:"coachId" db:"coach_id"`
	Message       string     `json:"message" db:"message"`
	SentBy        string     `json:"sentBy" db:"sent_by"`
	MessageType   string     `json:"messageType" db:"message_type"`
	IsRead        bool       `json:"isRead" db:"is_read"`
	AttachmentURL *string    `json:"attachmentUrl,omitempty" db:"attachment_url"`
	ResponseTime  *time.Time `json:"responseTime,omitempty" db:"response_time"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`

	// Join (populated by the repository, not a column)
	Coach *Coach `json:"coach,omitempty" db:"-"`
}

// ValidSentBy reports whether v is one of the allowed sender values.
func ValidSentBy(v string) bool {
	return v == SentByUser || v == SentByCoach
}

// ValidMessageType reports whether v is one of the allowed message types.
func ValidMessageType(v string) bool {
	return v == MessageTypeText || v == MessageTypeImage || v == MessageTypeFile
}
