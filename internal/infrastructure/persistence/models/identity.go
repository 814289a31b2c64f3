package models

import (
	"github.com/compras/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User entity.
type UserModel struct {
	BaseModel
	Username     string        `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayName  string        `gorm:"type:varchar(200)"`
	PasswordHash string        `gorm:"type:varchar(100);not null"`
	Role         identity.Role `gorm:"type:varchar(20);not null"`
	Active       bool          `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		DisplayName:  m.DisplayName,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		Active:       m.Active,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.DisplayName = u.DisplayName
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.Active = u.Active
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
