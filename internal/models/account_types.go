package models

// SystemAccount is the model for the 'system_accounts' table.
// The password column is compared as-is in the repository; it is never
// serialized back to clients.
type SystemAccount struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	Role     Role   `json:"role" db:"role"`
	IsActive bool   `json:"isActive" db:"is_active"`
}
