package platform

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/model"
)

type ChannelService struct {
	DB *gorm.DB
}

func NewChannelService() *ChannelService {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &ChannelService{DB: dal.MainDB}
}

func NewChannelServiceWithDB(db *gorm.DB) *ChannelService {
	return &ChannelService{DB: db}
}

// Create provisions a channel. A duplicate code is a domain error, not a
// crash; the caller maps it to an input-validation failure.
func (s *ChannelService) Create(in dto.CreateChannelInput) (*model.Channel, error) {
	var existing model.Channel
	err := s.DB.Where("code = ?", in.Code).First(&existing).Error
	if err == nil {
		return nil, constant.NewError(constant.CodeChannelCodeTaken)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ch := &model.Channel{
		ID:                    idgen.New(),
		Code:                  in.Code,
		Token:                 in.Token,
		DefaultLanguageCode:   in.DefaultLanguageCode,
		PricesIncludeTax:      in.PricesIncludeTax,
		CurrencyCode:          in.CurrencyCode,
		DefaultTaxZoneID:      in.DefaultTaxZoneID,
		DefaultShippingZoneID: in.DefaultShippingZoneID,
	}
	if err := s.DB.Create(ch).Error; err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *ChannelService) GetByID(id uint64) (*model.Channel, error) {
	var ch model.Channel
	err := s.DB.Where("channel_id = ?", id).First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}
