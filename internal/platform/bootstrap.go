package platform

import (
	"encoding/json"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mkt-merchant-api/internal/config"
	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/model"
)

// EnsureSuperAdmin seeds the superadmin role and administrator on startup.
// Merchant provisioning grants this role access to every new channel, so it
// has to exist before the first create call.
func EnsureSuperAdmin(db *gorm.DB) {
	var role model.Role
	err := db.Where("code = ?", constant.SuperAdminRoleCode).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		perms, _ := json.Marshal([]constant.Permission{constant.SuperAdmin})
		role = model.Role{
			ID:          idgen.New(),
			Code:        constant.SuperAdminRoleCode,
			Description: "SuperAdmin",
			Permissions: string(perms),
		}
		if err := db.Create(&role).Error; err != nil {
			log.Fatalf("seed superadmin role failed: %v", err)
		}
	} else if err != nil {
		log.Fatalf("lookup superadmin role failed: %v", err)
	}

	sec := config.C.Security
	if sec.SuperAdminEmail == "" {
		return
	}
	var admin model.Administrator
	err = db.Where("email_address = ?", sec.SuperAdminEmail).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(sec.SuperAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash superadmin password failed: %v", err)
		}
		admin = model.Administrator{
			ID:           idgen.New(),
			FirstName:    "Super",
			LastName:     "Admin",
			EmailAddress: sec.SuperAdminEmail,
			PasswordHash: string(hash),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("seed superadmin failed: %v", err)
		}
		link := model.AdministratorRole{AdministratorID: admin.ID, RoleID: role.ID}
		if err := db.Create(&link).Error; err != nil {
			log.Fatalf("bind superadmin role failed: %v", err)
		}
	} else if err != nil {
		log.Fatalf("lookup superadmin failed: %v", err)
	}
}
