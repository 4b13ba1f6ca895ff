package platform

import (
	"log"

	"gorm.io/gorm"

	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/model"
)

type ProductService struct {
	DB *gorm.DB
}

func NewProductService() *ProductService {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &ProductService{DB: dal.MainDB}
}

func NewProductServiceWithDB(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

// GetProductChannels lists the channels a product is assigned to, in
// assignment order. Products themselves are host-owned; only the join rows
// are read here.
func (s *ProductService) GetProductChannels(productID uint64) ([]model.Channel, error) {
	var channels []model.Channel
	err := s.DB.
		Joins("JOIN m_product_channel pc ON pc.channel_id = m_channel.channel_id").
		Where("pc.product_id = ?", productID).
		Order("pc.channel_id").
		Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}
