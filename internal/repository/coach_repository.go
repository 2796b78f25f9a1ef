package repository

import (
	"database/sql"
	"strings"

	"github.com/smokequit/smokequit-api/internal/models"
)

// CoachRepository issues all SQL for the 'coaches' table.
type CoachRepository struct {
	DB *sql.DB
}

func NewCoachRepository(db *sql.DB) *CoachRepository {
	return &CoachRepository{DB: db}
}

const coachColumns = "id, full_name, email, phone_number, bio, created_at"

func scanCoach(row interface{ Scan(...any) error }) (*models.Coach, error) {
	var c models.Coach
	if err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.PhoneNumber, &c.Bio, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CoachRepository) queryMany(query string, args ...interface{}) ([]*models.Coach, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coaches []*models.Coach
	for rows.Next() {
		c, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, c)
	}
	return coaches, rows.Err()
}

// GetAll returns every coach, newest first.
func (r *CoachRepository) GetAll() ([]*models.Coach, error) {
	return r.queryMany("SELECT " + coachColumns + " FROM coaches ORDER BY id DESC")
}

// GetByID returns one coach or ErrNotFound.
func (r *CoachRepository) GetByID(id int64) (*models.Coach, error) {
	row := r.DB.QueryRow("SELECT "+coachColumns+" FROM coaches WHERE id = ?", id)
	c, err := scanCoach(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return c, err
}

// GetByEmail is the uniqueness probe: exact match on the normalized email.
func (r *CoachRepository) GetByEmail(email string) (*models.Coach, error) {
	row := r.DB.QueryRow("SELECT "+coachColumns+" FROM coaches WHERE LOWER(email) = ?", lower(email))
	c, err := scanCoach(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return c, err
}

// HasChats reports whether any chat row still references the coach.
func (r *CoachRepository) HasChats(coachID int64) (bool, error) {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM chats WHERE coach_id = ?", coachID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the coach and returns the store-assigned id.
func (r *CoachRepository) Create(c *models.Coach) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO coaches (full_name, email, phone_number, bio, created_at) VALUES (?, ?, ?, ?, ?)",
		c.FullName, c.Email, c.PhoneNumber, c.Bio, c.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update persists the whitelisted columns. CreatedAt is never rewritten.
func (r *CoachRepository) Update(c *models.Coach) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRow("SELECT id FROM coaches WHERE id = ? FOR UPDATE", c.ID).Scan(&current)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"UPDATE coaches SET full_name = ?, email = ?, phone_number = ?, bio = ? WHERE id = ?",
		c.FullName, c.Email, c.PhoneNumber, c.Bio, c.ID,
	)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return 1, nil
}

// Remove deletes the coach and reports whether a row was deleted.
func (r *CoachRepository) Remove(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM coaches WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Search filters by full name and email; each argument is independently
// optional and matches as a case-insensitive substring.
func (r *CoachRepository) Search(fullName, email string) ([]*models.Coach, error) {
	query, args := coachSearchQuery(fullName, email)
	return r.queryMany(query+" ORDER BY id DESC", args...)
}

// SearchWithPaging applies the same filters, counts the filtered set and
// slices with offset/limit.
func (r *CoachRepository) SearchWithPaging(fullName, email string, currentPage, pageSize int) (models.PaginationResult[*models.Coach], error) {
	var empty models.PaginationResult[*models.Coach]

	query, args := coachSearchQuery(fullName, email)
	countQuery := strings.Replace(query, "SELECT "+coachColumns, "SELECT COUNT(*)", 1)

	var total int
	if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return empty, err
	}

	pageArgs := append(append([]interface{}{}, args...), pageSize, (currentPage-1)*pageSize)
	coaches, err := r.queryMany(query+" ORDER BY id DESC LIMIT ? OFFSET ?", pageArgs...)
	if err != nil {
		return empty, err
	}
	return models.NewPaginationResult(coaches, total, currentPage, pageSize), nil
}

// GetAllWithPaging counts the table, then slices with offset/limit.
func (r *CoachRepository) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Coach], error) {
	return r.SearchWithPaging("", "", currentPage, pageSize)
}

func coachSearchQuery(fullName, email string) (string, []interface{}) {
	query := "SELECT " + coachColumns + " FROM coaches WHERE 1=1"
	var args []interface{}

	if fullName != "" {
		query += " AND LOWER(full_name) LIKE ?"
		args = append(args, "%"+lower(fullName)+"%")
	}
	if email != "" {
		query += " AND LOWER(email) LIKE ?"
		args = append(args, "%"+lower(email)+"%")
	}
	return query, args
}
