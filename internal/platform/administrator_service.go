package platform

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dal"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/model"
)

type AdministratorService struct {
	DB *gorm.DB
}

func NewAdministratorService() *AdministratorService {
	if dal.MainDB == nil {
		log.Panic("[FATAL] dal.MainDB is nil - database not initialized")
	}
	return &AdministratorService{DB: dal.MainDB}
}

func NewAdministratorServiceWithDB(db *gorm.DB) *AdministratorService {
	return &AdministratorService{DB: db}
}

func (s *AdministratorService) Create(in dto.CreateAdministratorInput) (*model.Administrator, error) {
	var existing model.Administrator
	err := s.DB.Where("email_address = ?", in.EmailAddress).First(&existing).Error
	if err == nil {
		return nil, constant.NewError(constant.CodeAdministratorEmailUsed)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &model.Administrator{
		ID:           idgen.New(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		PasswordHash: string(hash),
	}
	if err := s.DB.Create(admin).Error; err != nil {
		return nil, err
	}
	for _, roleID := range in.RoleIDs {
		link := model.AdministratorRole{AdministratorID: admin.ID, RoleID: roleID}
		if err := s.DB.Create(&link).Error; err != nil {
			return nil, err
		}
	}
	return admin, nil
}

// Update applies the non-nil fields only. Role bindings are never touched
// here; a merchant administrator keeps its provisioned role for life.
func (s *AdministratorService) Update(in dto.UpdateAdministratorInput) (*model.Administrator, error) {
	var admin model.Administrator
	err := s.DB.Where("administrator_id = ?", in.ID).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, constant.NewError(constant.CodeAdministratorNotFound)
	}
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		admin.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		admin.LastName = *in.LastName
	}
	if in.EmailAddress != nil {
		admin.EmailAddress = *in.EmailAddress
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hash)
	}
	if err := s.DB.Save(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdministratorService) SoftDelete(id uint64) error {
	return s.DB.Delete(&model.Administrator{}, "administrator_id = ?", id).Error
}

func (s *AdministratorService) FindByEmail(email string) (*model.Administrator, error) {
	var admin model.Administrator
	err := s.DB.Where("email_address = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// PermissionsOf unions the permission sets of every role bound to the
// administrator. A superadmin role binding short-circuits to the SuperAdmin
// grant, which satisfies any guard.
func (s *AdministratorService) PermissionsOf(adminID uint64) ([]constant.Permission, error) {
	var roles []model.Role
	err := s.DB.
		Joins("JOIN m_administrator_role ar ON ar.role_id = m_role.role_id").
		Where("ar.administrator_id = ?", adminID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	seen := map[constant.Permission]bool{}
	var perms []constant.Permission
	for i := range roles {
		if roles[i].Code == constant.SuperAdminRoleCode {
			return []constant.Permission{constant.SuperAdmin}, nil
		}
		for _, p := range DecodePermissions(&roles[i]) {
			if !seen[p] {
				seen[p] = true
				perms = append(perms, p)
			}
		}
	}
	return perms, nil
}

// CheckPassword compares a login attempt against the stored hash.
func (s *AdministratorService) CheckPassword(admin *model.Administrator, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}
