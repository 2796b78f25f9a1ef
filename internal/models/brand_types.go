package models

// Brand is the model for the 'brands' table.
// Pointers are used for nullable columns so JSON stays clean.
type Brand struct {
	ID          int64   `json:"id" db:"id"`
	BrandName   string  `json:"brandName" db:"brand_name"`
	Country     *string `json:"country,omitempty" db:"country"`
	FoundedYear *int    `json:"foundedYear,omitempty" db:"founded_year"`
	Website     *string `json:"website,omitempty" db:"website"`
}
