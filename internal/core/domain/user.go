package domain

import (
	"time"
)

type User struct {
	ID        uint64
	Name      string
	Email     string
	Password  string
	IsActive  bool
	CreatedAt time.Time
}

// UserUpdate carries the optional fields of a profile update.
// Nil means "leave as is".
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	IsActive *bool
}
