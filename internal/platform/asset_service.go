package platform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"mkt-merchant-api/internal/config"
	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/model"
)

type AssetService struct {
	DB  *gorm.DB
	Dir string
}

func NewAssetService() *AssetService {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &AssetService{DB: dal.MainDB, Dir: config.C.Platform.AssetDir}
}

func NewAssetServiceWithDB(db *gorm.DB) *AssetService {
	return &AssetService{DB: db, Dir: config.C.Platform.AssetDir}
}

// Create copies the payload into asset storage and registers the row. The
// storage name is prefixed with a fresh id so repeated uploads of the same
// file never collide.
func (s *AssetService) Create(name string, data []byte) (*model.Asset, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, constant.NewError(constant.CodeAssetStorageFailed)
	}
	id := idgen.New()
	storageName := fmt.Sprintf("%d_%s", id, sanitizeFileName(name))
	source := filepath.Join(s.Dir, storageName)
	if err := os.WriteFile(source, data, 0644); err != nil {
		return nil, constant.NewError(constant.CodeAssetStorageFailed)
	}

	asset := &model.Asset{
		ID:       id,
		Name:     name,
		Source:   source,
		MimeType: mimeFromName(name),
		FileSize: int64(len(data)),
	}
	if err := s.DB.Create(asset).Error; err != nil {
		_ = os.Remove(source)
		return nil, err
	}
	return asset, nil
}

// CreateFromFile registers an existing file on disk, e.g. the freshly
// generated QR image. The source file is left in place for the caller to
// clean up.
func (s *AssetService) CreateFromFile(path string) (*model.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, constant.NewError(constant.CodeAssetStorageFailed)
	}
	return s.Create(filepath.Base(path), data)
}

func sanitizeFileName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	return filepath.Base(name)
}

func mimeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
