package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Age          *int      `bson:"age,omitempty" json:"age,omitempty"`
	AvatarURL    *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Role         UserRole  `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}
