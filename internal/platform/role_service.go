package platform

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/model"
)

type RoleService struct {
	DB *gorm.DB
}

func NewRoleService() *RoleService {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &RoleService{DB: dal.MainDB}
}

func NewRoleServiceWithDB(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

func (s *RoleService) Create(in dto.CreateRoleInput) (*model.Role, error) {
	perms, err := json.Marshal(in.Permissions)
	if err != nil {
		return nil, err
	}
	role := &model.Role{
		ID:          idgen.New(),
		Code:        in.Code,
		Description: in.Description,
		Permissions: string(perms),
	}
	if err := s.DB.Create(role).Error; err != nil {
		return nil, err
	}
	for _, chID := range in.ChannelIDs {
		if err := s.AssignRoleToChannel(role.ID, chID); err != nil {
			return nil, err
		}
	}
	return role, nil
}

func (s *RoleService) AssignRoleToChannel(roleID, channelID uint64) error {
	link := model.RoleChannel{RoleID: roleID, ChannelID: channelID}
	return s.DB.Where(link).FirstOrCreate(&link).Error
}

func (s *RoleService) GetSuperAdminRole() (*model.Role, error) {
	var role model.Role
	err := s.DB.Where("code = ?", constant.SuperAdminRoleCode).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, constant.NewError(constant.CodeSuperAdminRoleMissing)
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// DecodePermissions unpacks a role's JSON permission list. A malformed
// column decodes to an empty grant set rather than failing the request.
func DecodePermissions(r *model.Role) []constant.Permission {
	var perms []constant.Permission
	if r == nil || r.Permissions == "" {
		return perms
	}
	_ = json.Unmarshal([]byte(r.Permissions), &perms)
	return perms
}
