package model

// ProductChannel links a platform-owned product to the channels it is
// assigned to. Products live in the host catalog; only the assignment is
// read here, to map a product back to its owning merchant.
type ProductChannel struct {
	ProductID uint64 `gorm:"column:product_id;primaryKey"`
	ChannelID uint64 `gorm:"column:channel_id;primaryKey"`
}

func (ProductChannel) TableName() string { return "m_product_channel" }
