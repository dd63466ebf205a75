// File: /models/user.go
package models

import (
	"time"
)

// Role is the closed set of user roles consumed by the authorization predicates.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Role      Role      `json:"role" gorm:"not null;size:20;default:'user'"`
	Avatar    string    `json:"avatar" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `json:"-" gorm:"foreignKey:AuthorID"`
}

// CanMutate reports whether the actor may edit or delete a resource owned by
// ownerID. True iff the actor owns the resource or holds the admin role.
// Every mutation path goes through this single predicate.
func CanMutate(actorID, ownerID string, role Role) bool {
	return actorID == ownerID || role == RoleAdmin
}

// HasRole reports whether role is one of the allowed roles.
func HasRole(role Role, allowed ...Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
