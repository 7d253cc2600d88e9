package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrPrincipalNotFound = errors.New("principal not found")
var ErrMissingFields = errors.New("missing required fields")

// Admin is a provisioned administrator account. Admins have no display
// name and cannot be created through the public API.
type Admin struct {
	ID           int64     `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// User is a self-registered member account.
type User struct {
	ID           int64     `json:"id" bson:"_id"`
	FullName     string    `json:"full_name" bson:"full_name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Principal is the identity resolved at login. Admin and user accounts
// live in disjoint stores; the role records which store resolved the
// email, and FullName is empty for admins.
type Principal struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
}
