package service

import (
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/model"
)

// Collaborator contracts of the provisioning workflow. The concrete
// implementations live in internal/platform and internal/dao; tests swap in
// mocks.

type ChannelProvisioner interface {
	Create(in dto.CreateChannelInput) (*model.Channel, error)
}

type RoleProvisioner interface {
	Create(in dto.CreateRoleInput) (*model.Role, error)
	GetSuperAdminRole() (*model.Role, error)
	AssignRoleToChannel(roleID, channelID uint64) error
}

type AdministratorProvisioner interface {
	Create(in dto.CreateAdministratorInput) (*model.Administrator, error)
	Update(in dto.UpdateAdministratorInput) (*model.Administrator, error)
	SoftDelete(id uint64) error
}

type AssetRegistrar interface {
	Create(name string, data []byte) (*model.Asset, error)
	CreateFromFile(path string) (*model.Asset, error)
}

type MerchantStore interface {
	GetByID(id uint64) (*model.Merchant, error)
	GetByUUID(uuid string) (*model.Merchant, error)
	GetByChannelID(channelID uint64) (*model.Merchant, error)
	List(q dto.MerchantListQuery) ([]model.Merchant, int64, error)
	Insert(m *model.Merchant) error
	Save(m *model.Merchant) error
	SoftDelete(id uint64) error
}
