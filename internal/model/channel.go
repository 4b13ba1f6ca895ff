package model

import "time"

// Channel is an isolated sales/catalog scope. The platform's default channel
// (id 1) has no merchant; every merchant owns exactly one channel.
type Channel struct {
	ID                    uint64    `gorm:"column:channel_id;primaryKey" json:"id"`
	Code                  string    `gorm:"column:code;size:64;uniqueIndex;not null" json:"code"`
	Token                 string    `gorm:"column:token;size:64" json:"token"`
	DefaultLanguageCode   string    `gorm:"column:default_language_code;size:8" json:"default_language_code"`
	PricesIncludeTax      bool      `gorm:"column:prices_include_tax" json:"prices_include_tax"`
	CurrencyCode          string    `gorm:"column:currency_code;size:3" json:"currency_code"`
	DefaultTaxZoneID      uint64    `gorm:"column:default_tax_zone_id" json:"default_tax_zone_id"`
	DefaultShippingZoneID uint64    `gorm:"column:default_shipping_zone_id" json:"default_shipping_zone_id"`
	CreatedAt             time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Channel) TableName() string { return "m_channel" }
