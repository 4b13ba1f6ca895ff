package dto

import "mkt-merchant-api/internal/constant"

type CreateChannelInput struct {
	Code                  string
	Token                 string
	DefaultLanguageCode   string
	PricesIncludeTax      bool
	CurrencyCode          string
	DefaultTaxZoneID      uint64
	DefaultShippingZoneID uint64
}

type CreateRoleInput struct {
	Code        string
	Description string
	ChannelIDs  []uint64
	Permissions []constant.Permission
}

type CreateAdministratorInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
	RoleIDs      []uint64
}

// UpdateAdministratorInput is partial: nil fields are left untouched.
type UpdateAdministratorInput struct {
	ID           uint64
	FirstName    *string
	LastName     *string
	EmailAddress *string
	Password     *string
}
