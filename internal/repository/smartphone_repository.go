package repository

import (
	"database/sql"
	"strings"

	"github.com/smokequit/smokequit-api/internal/models"
)

// SmartphoneRepository issues all SQL for the 'smartphones' table.
// Reads eager-load the owning brand the way the catalog UI expects.
type SmartphoneRepository struct {
	DB *sql.DB
}

func NewSmartphoneRepository(db *sql.DB) *SmartphoneRepository {
	return &SmartphoneRepository{DB: db}
}

const smartphoneSelect = `
	SELECT s.id, s.brand_id, s.model_name, s.storage, s.color, s.price, s.stock, s.release_date,
	       b.id, b.brand_name, b.country, b.founded_year, b.website
	FROM smartphones s
	LEFT JOIN brands b ON b.id = s.brand_id`

func scanSmartphone(row interface{ Scan(...any) error }) (*models.Smartphone, error) {
	var s models.Smartphone
	var brandID sql.NullInt64
	var brandName sql.NullString
	var country sql.NullString
	var foundedYear sql.NullInt64
	var website sql.NullString

	if err := row.Scan(
		&s.ID, &s.BrandID, &s.ModelName, &s.Storage, &s.Color, &s.Price, &s.Stock, &s.ReleaseDate,
		&brandID, &brandName, &country, &foundedYear, &website,
	); err != nil {
		return nil, err
	}

	if brandID.Valid {
		b := &models.Brand{ID: brandID.Int64, BrandName: brandName.String}
		if country.Valid {
			b.Country = &country.String
		}
		if foundedYear.Valid {
			y := int(foundedYear.Int64)
			b.FoundedYear = &y
		}
		if website.Valid {
			b.Website = &website.String
		}
		s.Brand = b
	}
	return &s, nil
}

func (r *SmartphoneRepository) queryMany(query string, args ...interface{}) ([]*models.Smartphone, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phones []*models.Smartphone
	for rows.Next() {
		s, err := scanSmartphone(rows)
		if err != nil {
			return nil, err
		}
		phones = append(phones, s)
	}
	return phones, rows.Err()
}

// GetAll returns every smartphone with its brand, newest first.
func (r *SmartphoneRepository) GetAll() ([]*models.Smartphone, error) {
	return r.queryMany(smartphoneSelect + " ORDER BY s.id DESC")
}

// GetByID returns one smartphone with its brand, or ErrNotFound.
func (r *SmartphoneRepository) GetByID(id int64) (*models.Smartphone, error) {
	row := r.DB.QueryRow(smartphoneSelect+" WHERE s.id = ?", id)
	s, err := scanSmartphone(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

// Create inserts the smartphone and returns the store-assigned id.
// The id column is never part of the insert; the store always assigns it.
func (r *SmartphoneRepository) Create(s *models.Smartphone) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO smartphones (brand_id, model_name, storage, color, price, stock, release_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
		s.BrandID, s.ModelName, s.Storage, s.Color, s.Price, s.Stock, s.ReleaseDate,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update re-reads the row FOR UPDATE inside its own transaction and then
// persists the whitelisted columns. Returns rows affected (0 when the row
// vanished between the caller's read and this write).
func (r *SmartphoneRepository) Update(s *models.Smartphone) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRow("SELECT id FROM smartphones WHERE id = ? FOR UPDATE", s.ID).Scan(&current)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"UPDATE smartphones SET brand_id = ?, model_name = ?, storage = ?, color = ?, price = ?, stock = ?, release_date = ? WHERE id = ?",
		s.BrandID, s.ModelName, s.Storage, s.Color, s.Price, s.Stock, s.ReleaseDate, s.ID,
	)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	// The locked read proved the row exists; a no-op UPDATE still counts.
	return 1, nil
}

// Remove deletes the smartphone and reports whether a row was deleted.
func (r *SmartphoneRepository) Remove(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM smartphones WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Search filters by model name and storage; each argument is independently
// optional and matches as a case-insensitive substring.
func (r *SmartphoneRepository) Search(modelName, storage string) ([]*models.Smartphone, error) {
	var where []string
	var args []interface{}

	if modelName != "" {
		where = append(where, "LOWER(s.model_name) LIKE ?")
		args = append(args, "%"+lower(modelName)+"%")
	}
	if storage != "" {
		where = append(where, "LOWER(s.storage) LIKE ?")
		args = append(args, "%"+lower(storage)+"%")
	}

	query := smartphoneSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY s.id DESC"

	return r.queryMany(query, args...)
}

// SearchWithPaging applies the same filters, counts the filtered set and
// slices with offset/limit.
func (r *SmartphoneRepository) SearchWithPaging(modelName, storage string, currentPage, pageSize int) (models.PaginationResult[*models.Smartphone], error) {
	var empty models.PaginationResult[*models.Smartphone]

	var where []string
	var args []interface{}
	if modelName != "" {
		where = append(where, "LOWER(s.model_name) LIKE ?")
		args = append(args, "%"+lower(modelName)+"%")
	}
	if storage != "" {
		where = append(where, "LOWER(s.storage) LIKE ?")
		args = append(args, "%"+lower(storage)+"%")
	}
	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM smartphones s"+whereClause, args...).Scan(&total); err != nil {
		return empty, err
	}

	pageArgs := append(append([]interface{}{}, args...), pageSize, (currentPage-1)*pageSize)
	phones, err := r.queryMany(smartphoneSelect+whereClause+" ORDER BY s.id DESC LIMIT ? OFFSET ?", pageArgs...)
	if err != nil {
		return empty, err
	}
	return models.NewPaginationResult(phones, total, currentPage, pageSize), nil
}
