package model

import (
	"time"
)

type User struct {
	Email     string    `db:"email"`
	Verified  bool      `db:"verified"`
	CreatedAt time.Time `db:"created_at"`
}
