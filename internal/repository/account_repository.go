package repository

import (
	"database/sql"

	"github.com/smokequit/smokequit-api/internal/models"
)

// AccountRepository issues all SQL for the 'system_accounts' table.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountColumns = "id, username, email, password, role, is_active"

func scanAccount(row interface{ Scan(...any) error }) (*models.SystemAccount, error) {
	var a models.SystemAccount
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.Password, &a.Role, &a.IsActive); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByLogin matches email and password directly against the stored values
// and only considers active accounts. Returns ErrNotFound on no match.
func (r *AccountRepository) GetByLogin(email, password string) (*models.SystemAccount, error) {
	row := r.DB.QueryRow(
		"SELECT "+accountColumns+" FROM system_accounts WHERE email = ? AND password = ? AND is_active = 1",
		email, password,
	)
	a, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return a, err
}

// GetAll returns every account, newest first.
func (r *AccountRepository) GetAll() ([]*models.SystemAccount, error) {
	rows, err := r.DB.Query("SELECT " + accountColumns + " FROM system_accounts ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SystemAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// GetByID returns one account or ErrNotFound.
func (r *AccountRepository) GetByID(id int64) (*models.SystemAccount, error) {
	row := r.DB.QueryRow("SELECT "+accountColumns+" FROM system_accounts WHERE id = ?", id)
	a, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return a, err
}

// GetByEmail returns the account owning the email, or ErrNotFound.
func (r *AccountRepository) GetByEmail(email string) (*models.SystemAccount, error) {
	row := r.DB.QueryRow("SELECT "+accountColumns+" FROM system_accounts WHERE email = ?", email)
	a, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return a, err
}

// Create inserts the account and returns the store-assigned id.
func (r *AccountRepository) Create(a *models.SystemAccount) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO system_accounts (username, email, password, role, is_active) VALUES (?, ?, ?, ?, ?)",
		a.Username, a.Email, a.Password, a.Role, a.IsActive,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update re-reads the row FOR UPDATE inside its own transaction and then
// persists the whitelisted columns.
func (r *AccountRepository) Update(a *models.SystemAccount) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRow("SELECT id FROM system_accounts WHERE id = ? FOR UPDATE", a.ID).Scan(&current)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"UPDATE system_accounts SET username = ?, email = ?, password = ?, role = ?, is_active = ? WHERE id = ?",
		a.Username, a.Email, a.Password, a.Role, a.IsActive, a.ID,
	)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return 1, nil
}

// Remove deletes the account and reports whether a row was deleted.
func (r *AccountRepository) Remove(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM system_accounts WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
