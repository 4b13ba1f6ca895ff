package service

import (
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/model"
)

// patchMerchant applies a partial update: every non-nil field overwrites the
// corresponding column, absent fields stay untouched. Shallow only; relation
// ids, uuid and asset references are never patched here.
func patchMerchant(m *model.Merchant, in dto.UpdateMerchantReq) {
	if in.CompanyCode != nil {
		m.CompanyCode = *in.CompanyCode
	}
	if in.CompanyName != nil {
		m.CompanyName = *in.CompanyName
	}
	if in.CompanyAddress != nil {
		m.CompanyAddress = *in.CompanyAddress
	}
	if in.CompanyDescription != nil {
		m.CompanyDescription = *in.CompanyDescription
	}
	if in.CustomerContactEmail != nil {
		m.CustomerContactEmail = *in.CustomerContactEmail
	}
	if in.CustomerContactPhone != nil {
		m.CustomerContactPhone = *in.CustomerContactPhone
	}
	if in.AdminPhoneNumber != nil {
		m.AdminPhoneNumber = *in.AdminPhoneNumber
	}
	if in.Enabled != nil {
		m.Enabled = *in.Enabled
	}
}
