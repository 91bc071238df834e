package entity

import (
	"time"
)

// User is an admin account able to manage board content.
// Passwords are stored as bcrypt hashes in Password and never serialized.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
