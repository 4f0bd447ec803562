package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an application account, not an employee record. Administrators log
// in with an email address, data officers with a username; the unused field
// stays empty.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	Username     string    `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	Role         string // rbac.RoleAdmin or rbac.RoleDataOfficer
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
