package model

import "time"

// Role is a named permission bundle, optionally scoped to channels via
// m_role_channel rows. Permissions is a JSON-encoded string list.
type Role struct {
	ID          uint64    `gorm:"column:role_id;primaryKey" json:"id"`
	Code        string    `gorm:"column:code;size:64;index;not null" json:"code"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	Permissions string    `gorm:"column:permissions;type:text" json:"permissions"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Role) TableName() string { return "m_role" }

type RoleChannel struct {
	RoleID    uint64 `gorm:"column:role_id;primaryKey"`
	ChannelID uint64 `gorm:"column:channel_id;primaryKey"`
}

func (RoleChannel) TableName() string { return "m_role_channel" }
