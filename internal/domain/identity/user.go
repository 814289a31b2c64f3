package identity

import (
	"strings"
	"time"

	"github.com/compras/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role determines which operations a user may perform
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// IsValid reports whether the role is known
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleOperator
}

// User is an operator of the system. Services in the other contexts
// never see the current user; authorization happens at the HTTP layer.
type User struct {
	shared.BaseEntity
	Username     string
	DisplayName  string
	PasswordHash string
	Role         Role
	Active       bool
}

// NewUser creates a user with a bcrypt-hashed password
func NewUser(username, displayName, password string, role Role) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}

	u := &User{
		BaseEntity:  shared.NewBaseEntity(),
		Username:    strings.ToLower(strings.TrimSpace(username)),
		DisplayName: displayName,
		Role:        role,
		Active:      true,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must have at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword reports whether the candidate matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Deactivate blocks the user from logging in
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now()
}

// Activate re-enables the user
func (u *User) Activate() {
	u.Active = true
	u.UpdatedAt = time.Now()
}
