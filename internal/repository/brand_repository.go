package repository

import (
	"database/sql"

	"github.com/smokequit/smokequit-api/internal/models"
)

// BrandRepository issues all SQL for the 'brands' table.
type BrandRepository struct {
	DB *sql.DB
}

func NewBrandRepository(db *sql.DB) *BrandRepository {
	return &BrandRepository{DB: db}
}

const brandColumns = "id, brand_name, country, founded_year, website"

func scanBrand(row interface{ Scan(...any) error }) (*models.Brand, error) {
	var b models.Brand
	if err := row.Scan(&b.ID, &b.BrandName, &b.Country, &b.FoundedYear, &b.Website); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetAll returns every brand, newest first.
func (r *BrandRepository) GetAll() ([]*models.Brand, error) {
	rows, err := r.DB.Query("SELECT " + brandColumns + " FROM brands ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// GetByID returns one brand or ErrNotFound.
func (r *BrandRepository) GetByID(id int64) (*models.Brand, error) {
	row := r.DB.QueryRow("SELECT "+brandColumns+" FROM brands WHERE id = ?", id)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return b, err
}

// Create inserts the brand and returns the store-assigned id.
func (r *BrandRepository) Create(b *models.Brand) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO brands (brand_name, country, founded_year, website) VALUES (?, ?, ?, ?)",
		b.BrandName, b.Country, b.FoundedYear, b.Website,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update persists the whitelisted columns and returns rows affected.
func (r *BrandRepository) Update(b *models.Brand) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE brands SET brand_name = ?, country = ?, founded_year = ?, website = ? WHERE id = ?",
		b.BrandName, b.Country, b.FoundedYear, b.Website, b.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Remove deletes the brand. Child smartphones go with it (ON DELETE CASCADE).
func (r *BrandRepository) Remove(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM brands WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Search filters by name and country; each argument is independently
// optional and matches as a case-insensitive substring.
func (r *BrandRepository) Search(name, country string) ([]*models.Brand, error) {
	query := "SELECT " + brandColumns + " FROM brands WHERE 1=1"
	var args []interface{}

	if name != "" {
		query += " AND LOWER(brand_name) LIKE ?"
		args = append(args, "%"+lower(name)+"%")
	}
	if country != "" {
		query += " AND LOWER(country) LIKE ?"
		args = append(args, "%"+lower(country)+"%")
	}
	query += " ORDER BY id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// GetAllWithPaging counts the table, then slices with offset/limit.
func (r *BrandRepository) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Brand], error) {
	var empty models.PaginationResult[*models.Brand]

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM brands").Scan(&total); err != nil {
		return empty, err
	}

	rows, err := r.DB.Query(
		"SELECT "+brandColumns+" FROM brands ORDER BY id DESC LIMIT ? OFFSET ?",
		pageSize, (currentPage-1)*pageSize,
	)
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return empty, err
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return empty, err
	}
	return models.NewPaginationResult(brands, total, currentPage, pageSize), nil
}
