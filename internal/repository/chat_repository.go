package repository

import (
	"database/sql"

	"github.com/smokequit/smokequit-api/internal/models"
)

// ChatFilter narrows chat reads. Every field is independently optional:
// empty strings and a nil IsRead mean "no filter on this field".
type ChatFilter struct {
	MessageType string
	SentBy      string
	IsRead      *bool
}

// ChatRepository issues all SQL for the 'chats' table. Reads eager-load the
// coach row the chat UI shows next to each message.
type ChatRepository struct {
	DB *sql.DB
}

func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

const chatSelect = `
	SELECT ch.id, ch.user_id, ch.coach_id, ch.message, ch.sent_by, ch.message_type,
	       ch.is_read, ch.attachment_url, ch.response_time, ch.created_at,
	       co.id, co.full_name, co.email, co.phone_number, co.bio, co.created_at
	FROM chats ch
	JOIN coaches co ON co.id = ch.coach_id`

func scanChat(row interface{ Scan(...any) error }) (*models.Chat, error) {
	var c models.Chat
	var coach models.Coach
	if err := row.Scan(
		&c.ID, &c.UserID, &c.CoachID, &c.Message, &c.SentBy, &c.MessageType,
		&c.IsRead, &c.AttachmentURL, &c.ResponseTime, &c.CreatedAt,
		&coach.ID, &coach.FullName, &coach.Email, &coach.PhoneNumber, &coach.Bio, &coach.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.Coach = &coach
	return &c, nil
}

func (r *ChatRepository) queryMany(query string, args ...interface{}) ([]*models.Chat, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []*models.Chat
	for rows.Next() {
		c, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

// GetAll returns the whole chat history with coaches, newest first.
func (r *ChatRepository) GetAll() ([]*models.Chat, error) {
	return r.queryMany(chatSelect + " ORDER BY ch.id DESC")
}

// GetByID returns one chat with its coach, or ErrNotFound.
func (r *ChatRepository) GetByID(id int64) (*models.Chat, error) {
	row := r.DB.QueryRow(chatSelect+" WHERE ch.id = ?", id)
	c, err := scanChat(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return c, err
}

// UserExists checks the referenced user account before a chat insert.
func (r *ChatRepository) UserExists(userID int64) (bool, error) {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM system_accounts WHERE id = ?", userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CoachExists checks the referenced coach before a chat insert.
func (r *ChatRepository) CoachExists(coachID int64) (bool, error) {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM coaches WHERE id = ?", coachID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the chat and returns the store-assigned id.
func (r *ChatRepository) Create(c *models.Chat) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO chats (user_id, coach_id, message, sent_by, message_type, is_read, attachment_url, response_time, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.UserID, c.CoachID, c.Message, c.SentBy, c.MessageType, c.IsRead, c.AttachmentURL, c.ResponseTime, c.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update re-reads the row FOR UPDATE inside its own transaction and then
// persists the whitelisted columns. UserID, CoachID and CreatedAt are
// immutable once written.
func (r *ChatRepository) Update(c *models.Chat) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRow("SELECT id FROM chats WHERE id = ? FOR UPDATE", c.ID).Scan(&current)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"UPDATE chats SET message = ?, sent_by = ?, message_type = ?, is_read = ?, attachment_url = ?, response_time = ? WHERE id = ?",
		c.Message, c.SentBy, c.MessageType, c.IsRead, c.AttachmentURL, c.ResponseTime, c.ID,
	)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return 1, nil
}

// Remove deletes the chat and reports whether a row was deleted.
func (r *ChatRepository) Remove(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM chats WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Search filters chat history; each filter is independently optional.
func (r *ChatRepository) Search(f ChatFilter) ([]*models.Chat, error) {
	where, args := chatFilterClause(f)
	return r.queryMany(chatSelect+where+" ORDER BY ch.id DESC", args...)
}

// GetAllWithPaging counts the table, then slices with offset/limit.
func (r *ChatRepository) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Chat], error) {
	return r.SearchWithPaging(ChatFilter{}, currentPage, pageSize)
}

// SearchWithPaging counts the filtered set, then slices with offset/limit.
func (r *ChatRepository) SearchWithPaging(f ChatFilter, currentPage, pageSize int) (models.PaginationResult[*models.Chat], error) {
	var empty models.PaginationResult[*models.Chat]

	where, args := chatFilterClause(f)

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM chats ch"+where, args...).Scan(&total); err != nil {
		return empty, err
	}

	pageArgs := append(append([]interface{}{}, args...), pageSize, (currentPage-1)*pageSize)
	chats, err := r.queryMany(chatSelect+where+" ORDER BY ch.id DESC LIMIT ? OFFSET ?", pageArgs...)
	if err != nil {
		return empty, err
	}
	return models.NewPaginationResult(chats, total, currentPage, pageSize), nil
}

func chatFilterClause(f ChatFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	var args []interface{}

	if f.MessageType != "" {
		where += " AND LOWER(ch.message_type) = ?"
		args = append(args, lower(f.MessageType))
	}
	if f.SentBy != "" {
		where += " AND LOWER(ch.sent_by) = ?"
		args = append(args, lower(f.SentBy))
	}
	if f.IsRead != nil {
		where += " AND ch.is_read = ?"
		args = append(args, *f.IsRead)
	}
	return where, args
}
