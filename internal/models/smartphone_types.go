package models

import "time"

// Smartphone is the model for the 'smartphones' table.
// ReleaseDate is a date-only value in the store; time.Time carries it here.
type Smartphone struct {
	ID          int64      `json:"id" db:"id"`
	BrandID     *int64     `json:"brandId,omitempty" db:"brand_id"`
	ModelName   string     `json:"modelName" db:"model_name"`
	Storage     *string    `json:"storage,omitempty" db:"storage"`
	Color       *string    `json:"color,omitempty" db:"color"`
	Price       float64    `json:"price" db:"price"`
	Stock       int        `json:"stock" db:"stock"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty" db:"release_date"`

	// Join (populated by the repository, not a column)
	Brand *Brand `json:"brand,omitempty" db:"-"`
}
