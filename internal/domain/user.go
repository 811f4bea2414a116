package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required,min=3"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
