package service

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"gorm.io/gorm"

	"mkt-merchant-api/internal/config"
	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/dao"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/event"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/logger"
	"mkt-merchant-api/internal/model"
	"mkt-merchant-api/internal/platform"
	"mkt-merchant-api/internal/qr"
)

type MerchantService struct {
	store    MerchantStore
	channels ChannelProvisioner
	roles    RoleProvisioner
	admins   AdministratorProvisioner
	assets   AssetRegistrar
	events   event.Publisher

	qrWrite func(payload, path string) error
	qrDir   string
}

func NewMerchantService() *MerchantService {
	return newMerchantService(
		dao.NewMerchantDao(),
		platform.NewChannelService(),
		platform.NewRoleService(),
		platform.NewAdministratorService(),
		platform.NewAssetService(),
	)
}

// NewMerchantServiceWithDB scopes the merchant row writes to a caller-held
// handle (the per-request transaction). The platform collaborators stay on
// the main connection: they stand in for out-of-band host RPCs, which the
// request transaction never covers, and their effects survive a rollback
// uncompensated.
func NewMerchantServiceWithDB(db *gorm.DB) *MerchantService {
	return newMerchantService(
		dao.NewMerchantDaoWithDB(db),
		platform.NewChannelService(),
		platform.NewRoleService(),
		platform.NewAdministratorService(),
		platform.NewAssetService(),
	)
}

func newMerchantService(
	store MerchantStore,
	channels ChannelProvisioner,
	roles RoleProvisioner,
	admins AdministratorProvisioner,
	assets AssetRegistrar,
) *MerchantService {
	return &MerchantService{
		store:    store,
		channels: channels,
		roles:    roles,
		admins:   admins,
		assets:   assets,
		events:   event.RabbitPublisher{},
		qrWrite:  qr.WriteFile,
		qrDir:    config.C.Platform.QRTempDir,
	}
}

func (s *MerchantService) FindOne(id uint64) (*model.Merchant, error) {
	return s.store.GetByID(id)
}

// FindOneByUUID serves the QR scan path, so it reads through the uuid cache
// before hitting the database.
func (s *MerchantService) FindOneByUUID(uuid string) (*model.Merchant, error) {
	if m := cacheGetByUUID(uuid); m != nil {
		return m, nil
	}
	m, err := s.store.GetByUUID(uuid)
	if err != nil || m == nil {
		return m, err
	}
	cachePut(m)
	return m, nil
}

func (s *MerchantService) FindOneByChannelID(channelID uint64) (*model.Merchant, error) {
	return s.store.GetByChannelID(channelID)
}

func (s *MerchantService) FindAll(q dto.MerchantListQuery) ([]model.Merchant, int64, error) {
	return s.store.List(q)
}

// Create runs the provisioning workflow in order: channel, superadmin grant,
// role, administrator, merchant row, QR asset. No step is compensated when a
// later one fails; the merchant row is the last durable piece, so earlier
// orphans stay invisible through the directory.
func (s *MerchantService) Create(in dto.CreateMerchantReq) (*model.Merchant, error) {
	p := config.C.Platform

	// 1) channel, code and token both from the company code
	channel, err := s.channels.Create(dto.CreateChannelInput{
		Code:                  in.CompanyCode,
		Token:                 in.CompanyCode,
		DefaultLanguageCode:   p.DefaultLanguage,
		PricesIncludeTax:      false,
		CurrencyCode:          p.DefaultCurrency,
		DefaultTaxZoneID:      p.DefaultTaxZoneID,
		DefaultShippingZoneID: p.DefaultShippingZoneID,
	})
	if err != nil {
		var ce constant.Error
		if errors.As(err, &ce) {
			return nil, constant.NewError(constant.CodeMerchantCreateChannel)
		}
		return nil, err
	}

	// 2) platform operators keep visibility into the new channel
	superAdminRole, err := s.roles.GetSuperAdminRole()
	if err != nil {
		return nil, err
	}
	if err := s.roles.AssignRoleToChannel(superAdminRole.ID, channel.ID); err != nil {
		return nil, err
	}

	// 3) channel-scoped role with the fixed merchant grant set
	role, err := s.roles.Create(dto.CreateRoleInput{
		Code:        in.CompanyCode,
		Description: in.CompanyCode,
		ChannelIDs:  []uint64{channel.ID},
		Permissions: constant.MerchantPermissions,
	})
	if err != nil {
		return nil, err
	}

	// 4) a merchant is an administrator with a channel-specific role
	admin, err := s.admins.Create(dto.CreateAdministratorInput{
		FirstName:    in.AdminFirstName,
		LastName:     in.AdminLastName,
		EmailAddress: in.AdminEmail,
		Password:     in.AdminPassword,
		RoleIDs:      []uint64{role.ID},
	})
	if err != nil {
		return nil, err
	}

	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	m := &model.Merchant{
		ID:                   idgen.New(),
		ChannelID:            channel.ID,
		RoleID:               role.ID,
		AdministratorID:      admin.ID,
		CompanyCode:          in.CompanyCode,
		CompanyName:          in.CompanyName,
		CompanyAddress:       in.CompanyAddress,
		CompanyDescription:   in.CompanyDescription,
		CustomerContactEmail: in.CustomerContactEmail,
		CustomerContactPhone: in.CustomerContactPhone,
		AdminPhoneNumber:     in.AdminPhoneNumber,
		Enabled:              enabled,
	}
	if in.Document != nil {
		if err := s.attachDocument(m, in.Document); err != nil {
			return nil, err
		}
	}

	// 5) first save generates the uuid; the QR payload needs it
	if err := s.store.Insert(m); err != nil {
		return nil, err
	}

	// 6) QR asset, then second save with the asset reference
	qrPath := qr.TempFileName(s.qrDir, in.CompanyCode)
	if err := s.qrWrite(m.UUID, qrPath); err != nil {
		return nil, constant.NewError(constant.CodeMerchantCreateQRAsset)
	}
	qrAsset, err := s.assets.CreateFromFile(qrPath)
	_ = os.Remove(qrPath)
	if err != nil {
		return nil, constant.NewError(constant.CodeMerchantCreateQRAsset)
	}
	m.QRAssetID = &qrAsset.ID
	m.QRAssetSource = qrAsset.Source
	if err := s.store.Save(m); err != nil {
		return nil, err
	}

	m.Channel = channel
	m.Role = role
	m.Administrator = admin

	if logger.Merchant != nil {
		logger.Merchant.Infof("merchant %d provisioned: company=%s channel=%d role=%d admin=%d",
			m.ID, m.CompanyCode, m.ChannelID, m.RoleID, m.AdministratorID)
	}
	cachePut(m)
	_ = s.events.Publish("merchant.created", event.NewMerchantEvent(m.ID, m.UUID, m.CompanyCode, m.ChannelID))
	return m, nil
}

// Update rotates the administrator's identity fields first, then patches the
// provided merchant columns. Channel and role are never altered.
func (s *MerchantService) Update(in dto.UpdateMerchantReq) (*model.Merchant, error) {
	m, err := s.store.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, constant.NewError(constant.CodeMerchantNotFound)
	}

	adminIn := dto.UpdateAdministratorInput{
		ID:           m.AdministratorID,
		FirstName:    in.AdminFirstName,
		LastName:     in.AdminLastName,
		EmailAddress: in.AdminEmail,
		Password:     in.AdminPassword,
	}
	admin, err := s.admins.Update(adminIn)
	if err != nil {
		return nil, err
	}

	patchMerchant(m, in)
	if in.Document != nil {
		if err := s.attachDocument(m, in.Document); err != nil {
			return nil, err
		}
	}
	if err := s.store.Save(m); err != nil {
		return nil, err
	}
	m.Administrator = admin

	cacheDrop(m.UUID)
	_ = s.events.Publish("merchant.updated", event.NewMerchantEvent(m.ID, m.UUID, m.CompanyCode, m.ChannelID))
	return m, nil
}

// SoftDelete tombstones the merchant and its administrator. The channel and
// role stay behind; revisit if offboarding ever needs to retire them too.
func (s *MerchantService) SoftDelete(id uint64) (*dto.DeletionResp, error) {
	m, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, constant.NewError(constant.CodeMerchantNotFound)
	}
	if err := s.store.SoftDelete(id); err != nil {
		return nil, err
	}
	if err := s.admins.SoftDelete(m.AdministratorID); err != nil {
		return nil, err
	}

	if logger.Merchant != nil {
		logger.Merchant.Infof("merchant %d soft-deleted: company=%s channel=%d kept", m.ID, m.CompanyCode, m.ChannelID)
	}
	cacheDrop(m.UUID)
	_ = s.events.Publish("merchant.deleted", event.NewMerchantEvent(m.ID, m.UUID, m.CompanyCode, m.ChannelID))
	return &dto.DeletionResp{Result: dto.DeletionResultDeleted}, nil
}

func (s *MerchantService) attachDocument(m *model.Merchant, doc *dto.FilePayload) error {
	asset, err := s.assets.Create(doc.Name, doc.Data)
	if err != nil {
		return constant.NewError(constant.CodeMerchantCreateDocument)
	}
	m.DocumentAssetID = &asset.ID
	m.DocumentAssetSource = asset.Source
	return nil
}

// PublicProfileForProduct maps a product back to its owning merchant's
// redacted contact projection. The platform default channel is excluded and
// the first remaining channel wins; multi-assignment is enforced upstream by
// channel assignment, not re-checked here.
func (s *MerchantService) PublicProfileForProduct(channels []model.Channel) (*dto.MerchantPublicVO, error) {
	defaultID := config.C.Platform.DefaultChannelID
	var assigned []model.Channel
	for _, ch := range channels {
		if ch.ID != defaultID {
			assigned = append(assigned, ch)
		}
	}
	if len(assigned) == 0 {
		return nil, nil
	}
	m, err := s.store.GetByChannelID(assigned[0].ID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return &dto.MerchantPublicVO{
		CompanyName:          m.CompanyName,
		CompanyAddress:       m.CompanyAddress,
		CompanyDescription:   m.CompanyDescription,
		CustomerContactEmail: m.CustomerContactEmail,
		CustomerContactPhone: m.CustomerContactPhone,
	}, nil
}

// uuid cache helpers; skipped entirely when redis is not wired (tests,
// degraded deployments).

const uuidCacheTTL = 10 * time.Minute

func cacheKey(uuid string) string { return "merchant:uuid:" + uuid }

func cacheGetByUUID(uuid string) *model.Merchant {
	if dal.RedisClient == nil {
		return nil
	}
	sjson, err := dal.RedisClient.Get(dal.RedisCtx, cacheKey(uuid)).Result()
	if err != nil {
		return nil
	}
	var m model.Merchant
	if err := json.Unmarshal([]byte(sjson), &m); err != nil {
		return nil
	}
	return &m
}

func cachePut(m *model.Merchant) {
	if dal.RedisClient == nil || m == nil {
		return
	}
	b, _ := json.Marshal(m)
	_ = dal.RedisClient.Set(dal.RedisCtx, cacheKey(m.UUID), string(b), uuidCacheTTL).Err()
}

func cacheDrop(uuid string) {
	if dal.RedisClient == nil {
		return
	}
	_ = dal.RedisClient.Del(dal.RedisCtx, cacheKey(uuid)).Err()
}
