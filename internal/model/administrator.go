package model

import (
	"time"

	"gorm.io/gorm"
)

// Administrator is a staff login identity, distinct from a storefront
// customer. A merchant's administrator is soft-deleted together with the
// merchant row.
type Administrator struct {
	ID           uint64         `gorm:"column:administrator_id;primaryKey" json:"id"`
	FirstName    string         `gorm:"column:first_name;size:64" json:"first_name"`
	LastName     string         `gorm:"column:last_name;size:64" json:"last_name"`
	EmailAddress string         `gorm:"column:email_address;size:128;uniqueIndex;not null" json:"email_address"`
	PasswordHash string         `gorm:"column:password_hash;size:128" json:"-"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Administrator) TableName() string { return "m_administrator" }

type AdministratorRole struct {
	AdministratorID uint64 `gorm:"column:administrator_id;primaryKey"`
	RoleID          uint64 `gorm:"column:role_id;primaryKey"`
}

func (AdministratorRole) TableName() string { return "m_administrator_role" }
