package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/model"
)

func TestPatchMerchant(t *testing.T) {
	base := func() model.Merchant {
		return model.Merchant{
			ID:                   7,
			UUID:                 "fixed-uuid",
			CompanyCode:          "ACME",
			CompanyName:          "Acme Pte. Ltd.",
			CompanyAddress:       "1 Raffles Place",
			CustomerContactEmail: "hello@acme.example",
			Enabled:              true,
		}
	}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		m := base()
		patchMerchant(&m, dto.UpdateMerchantReq{ID: 7})
		assert.Equal(t, base(), m)
	})

	t.Run("only provided fields change", func(t *testing.T) {
		m := base()
		name := "Acme Holdings"
		phone := "+65 6111 2222"
		patchMerchant(&m, dto.UpdateMerchantReq{
			ID:                   7,
			CompanyName:          &name,
			CustomerContactPhone: &phone,
		})
		assert.Equal(t, "Acme Holdings", m.CompanyName)
		assert.Equal(t, "+65 6111 2222", m.CustomerContactPhone)
		assert.Equal(t, "ACME", m.CompanyCode)
		assert.Equal(t, "1 Raffles Place", m.CompanyAddress)
		assert.True(t, m.Enabled)
	})

	t.Run("explicit zero values are applied", func(t *testing.T) {
		m := base()
		enabled := false
		empty := ""
		patchMerchant(&m, dto.UpdateMerchantReq{
			ID:             7,
			Enabled:        &enabled,
			CompanyAddress: &empty,
		})
		assert.False(t, m.Enabled)
		assert.Empty(t, m.CompanyAddress)
	})

	t.Run("identity and asset fields stay untouched", func(t *testing.T) {
		m := base()
		code := "NEWCODE"
		patchMerchant(&m, dto.UpdateMerchantReq{ID: 7, CompanyCode: &code})
		assert.Equal(t, uint64(7), m.ID)
		assert.Equal(t, "fixed-uuid", m.UUID)
		assert.Nil(t, m.QRAssetID)
	})
}
