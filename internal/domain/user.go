package domain

import (
	"context"
	"time"
)

// User role constants
const (
	RoleAdmin   = "ADMIN"
	RoleCompany = "COMPANY"
	RoleRep     = "REP"
)

type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // ADMIN, COMPANY, REP
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserRepository is the identity resolver: an authenticated principal
// maps to a users row, which carries the authoritative role.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
