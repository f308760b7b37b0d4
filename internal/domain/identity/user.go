package identity

import (
	"strings"
	"time"

	"github.com/sap-portal/backend/internal/domain/shared"
)

// Role is the portal access level for a back-office account
type Role string

const (
	RoleStaff    Role = "staff"
	RoleDirector Role = "director"
)

// IsValid reports whether the role is a member of the enumeration
func (r Role) IsValid() bool {
	return r == RoleStaff || r == RoleDirector
}

// User is a back-office account. Students never have accounts; they
// track applications by student number without logging in.
type User struct {
	shared.BaseAggregateRoot
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FullName     string     `gorm:"type:varchar(150)"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'staff'"`
	Active       bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a back-office account. The password hash is produced
// by the auth layer; the domain only stores it.
func NewUser(username, email, passwordHash, fullName string, role Role) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be staff or director")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.TrimSpace(username),
		Email:             strings.TrimSpace(email),
		PasswordHash:      passwordHash,
		FullName:          fullName,
		Role:              role,
		Active:            true,
	}, nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

// Deactivate disables the account
func (u *User) Deactivate() {
	if !u.Active {
		return
	}
	u.Active = false
	u.UpdatedAt = time.Now()
}

// IsDirector reports whether the account has director access
func (u *User) IsDirector() bool {
	return u.Role == RoleDirector
}
