package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Merchant is the directory row for an onboarded seller. It only holds
// foreign keys into the platform-owned channel/role/administrator/asset
// tables; those resources outlive the merchant row on soft delete.
type Merchant struct {
	ID   uint64 `gorm:"column:merchant_id;primaryKey" json:"id"`
	UUID string `gorm:"column:uuid;size:36;uniqueIndex" json:"uuid"`

	ChannelID       uint64 `gorm:"column:channel_id" json:"channel_id"`
	RoleID          uint64 `gorm:"column:role_id" json:"role_id"`
	AdministratorID uint64 `gorm:"column:administrator_id" json:"administrator_id"`

	CompanyCode          string `gorm:"column:company_code;size:64;not null" json:"company_code"`
	CompanyName          string `gorm:"column:company_name;size:128;not null" json:"company_name"`
	CompanyAddress       string `gorm:"column:company_address;size:255" json:"company_address"`
	CompanyDescription   string `gorm:"column:company_description;size:512" json:"company_description"`
	CustomerContactEmail string `gorm:"column:customer_contact_email;size:128" json:"customer_contact_email"`
	CustomerContactPhone string `gorm:"column:customer_contact_phone;size:32" json:"customer_contact_phone"`
	AdminPhoneNumber     string `gorm:"column:admin_phone_number;size:32" json:"admin_phone_number"`
	Enabled              bool   `gorm:"column:enabled;default:true" json:"enabled"`

	QRAssetID           *uint64 `gorm:"column:qr_asset_id" json:"qr_asset_id"`
	QRAssetSource       string  `gorm:"column:qr_asset_source;size:255" json:"qr_asset_source"`
	DocumentAssetID     *uint64 `gorm:"column:document_asset_id" json:"document_asset_id"`
	DocumentAssetSource string  `gorm:"column:document_asset_source;size:255" json:"document_asset_source"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	Channel       *Channel       `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	Role          *Role          `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Administrator *Administrator `gorm:"foreignKey:AdministratorID" json:"administrator,omitempty"`
}

func (Merchant) TableName() string { return "m_merchant" }

// BeforeCreate assigns the externally-stable uuid at first persist. It is
// never regenerated afterwards; public lookups key on it.
func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}
	return nil
}
