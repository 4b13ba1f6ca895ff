package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/model"
)

type MerchantDao struct {
	DB *gorm.DB
}

func NewMerchantDao() *MerchantDao {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &MerchantDao{DB: dal.MainDB}
}

// NewMerchantDaoWithDB builds a dao over a caller-supplied handle, typically
// the per-request transaction.
func NewMerchantDaoWithDB(db *gorm.DB) *MerchantDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &MerchantDao{DB: db}
}

func (r *MerchantDao) checkDB() error {
	if r == nil || r.DB == nil {
		return errors.New("DB connection is nil")
	}
	return nil
}

func (r *MerchantDao) withRelations() *gorm.DB {
	return r.DB.Preload("Channel").Preload("Role").Preload("Administrator")
}

// GetByID returns the active merchant or nil when absent. Soft-deleted rows
// never surface; gorm filters on deleted_at for every query here.
func (r *MerchantDao) GetByID(id uint64) (*model.Merchant, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by id failed: %w", err)
	}
	var m model.Merchant
	err := r.withRelations().Where("merchant_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MerchantDao) GetByUUID(uuid string) (*model.Merchant, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by uuid failed: %w", err)
	}
	var m model.Merchant
	err := r.withRelations().Where("uuid = ?", uuid).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MerchantDao) GetByChannelID(channelID uint64) (*model.Merchant, error) {
	if err := r.checkDB(); err != nil {
		return nil, fmt.Errorf("get by channel id failed: %w", err)
	}
	var m model.Merchant
	err := r.withRelations().Where("channel_id = ?", channelID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// sortColumns whitelists sortable fields for the list query.
var sortColumns = map[string]string{
	"company_code": "company_code",
	"company_name": "company_name",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

func (r *MerchantDao) List(q dto.MerchantListQuery) ([]model.Merchant, int64, error) {
	if err := r.checkDB(); err != nil {
		return nil, 0, fmt.Errorf("list failed: %w", err)
	}
	query := r.DB.Model(&model.Merchant{})
	if q.Kw != "" {
		kw := "%" + q.Kw + "%"
		query = query.Where("company_code LIKE ? OR company_name LIKE ?", kw, kw)
	}
	if q.Enabled != nil {
		query = query.Where("enabled = ?", *q.Enabled)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if col, ok := sortColumns[q.Sort]; ok {
		order = col
		if q.Desc {
			order += " DESC"
		}
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	pageNum := q.PageNum
	if pageNum <= 0 {
		pageNum = 1
	}

	var items []model.Merchant
	err := query.
		Preload("Channel").Preload("Role").Preload("Administrator").
		Order(order).
		Limit(pageSize).
		Offset((pageNum - 1) * pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MerchantDao) Insert(m *model.Merchant) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("insert merchant failed: %w", err)
	}
	return r.DB.Create(m).Error
}

func (r *MerchantDao) Save(m *model.Merchant) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("save merchant failed: %w", err)
	}
	return r.DB.Omit("Channel", "Role", "Administrator").Save(m).Error
}

// SoftDelete stamps deleted_at; the row stays behind as a tombstone.
func (r *MerchantDao) SoftDelete(id uint64) error {
	if err := r.checkDB(); err != nil {
		return fmt.Errorf("soft delete merchant failed: %w", err)
	}
	return r.DB.Delete(&model.Merchant{}, "merchant_id = ?", id).Error
}
