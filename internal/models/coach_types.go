package models

import "time"

// Coach is the model for the 'coaches' table.
// Email is unique across rows; the service layer enforces it.
type Coach struct {
	ID          int64     `json:"id" db:"id"`
	FullName    string    `json:"fullName" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	Bio         *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
