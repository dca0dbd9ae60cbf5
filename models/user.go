package models

import "time"

const RoleAdmin = "admin"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Role      string    `json:"role"` // empty for regular users, "admin" for admins
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
