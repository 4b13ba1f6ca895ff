package service

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkt-merchant-api/internal/config"
	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/model"
)

type testDeps struct {
	store    *memStore
	channels *mockChannelService
	roles    *mockRoleService
	admins   *mockAdministratorService
	assets   *mockAssetService
	events   *mockPublisher

	qrPayloads []string
}

func newTestService(t *testing.T) (*MerchantService, *testDeps) {
	t.Helper()
	config.C.Platform.DefaultChannelID = 1
	config.C.Platform.DefaultLanguage = "en"
	config.C.Platform.DefaultCurrency = "SGD"
	config.C.Platform.DefaultTaxZoneID = 1
	config.C.Platform.DefaultShippingZoneID = 1

	d := &testDeps{
		store:    newMemStore(),
		channels: &mockChannelService{},
		roles:    newMockRoleService(),
		admins:   newMockAdministratorService(),
		assets:   &mockAssetService{},
		events:   &mockPublisher{},
	}
	svc := &MerchantService{
		store:    d.store,
		channels: d.channels,
		roles:    d.roles,
		admins:   d.admins,
		assets:   d.assets,
		events:   d.events,
		qrDir:    t.TempDir(),
		qrWrite: func(payload, path string) error {
			d.qrPayloads = append(d.qrPayloads, payload)
			return os.WriteFile(path, []byte(payload), 0644)
		},
	}
	return svc, d
}

func validCreateReq() dto.CreateMerchantReq {
	return dto.CreateMerchantReq{
		CompanyCode:          "ACME",
		CompanyName:          "Acme Pte. Ltd.",
		CompanyAddress:       "1 Raffles Place",
		CompanyDescription:   "Widgets and more",
		CustomerContactEmail: "hello@acme.example",
		CustomerContactPhone: "+65 6000 0000",
		AdminPhoneNumber:     "+65 9000 0000",
		AdminFirstName:       "Ada",
		AdminLastName:        "Lim",
		AdminEmail:           "ada@acme.example",
		AdminPassword:        "s3cret-pass",
	}
}

func TestCreateProvisionsFullChain(t *testing.T) {
	svc, d := newTestService(t)

	m, err := svc.Create(validCreateReq())
	require.NoError(t, err)
	require.NotNil(t, m)

	// channel: code and token both derive from the company code
	require.Len(t, d.channels.Created, 1)
	ch := d.channels.Created[0]
	assert.Equal(t, "ACME", ch.Code)
	assert.Equal(t, "ACME", ch.Token)
	assert.Equal(t, "en", ch.DefaultLanguageCode)
	assert.Equal(t, "SGD", ch.CurrencyCode)
	assert.False(t, ch.PricesIncludeTax)

	// superadmin keeps visibility into the new channel
	assert.Contains(t, d.roles.Assignments[d.roles.superAdmin.ID], ch.ID)

	// role: named after the company code, scoped to the new channel,
	// carrying the fixed merchant grant set
	require.Len(t, d.roles.Created, 1)
	role := d.roles.Created[0]
	assert.Equal(t, "ACME", role.Code)
	assert.Equal(t, "ACME", role.Description)
	assert.Equal(t, []uint64{ch.ID}, d.roles.LastInput.ChannelIDs)
	assert.ElementsMatch(t, constant.MerchantPermissions, d.roles.LastInput.Permissions)

	// administrator
	require.Len(t, d.admins.Created, 1)
	assert.Equal(t, "ada@acme.example", d.admins.Created[0].EmailAddress)

	// merchant row with uuid, enabled by default, QR asset wired in
	assert.NotEmpty(t, m.UUID)
	assert.True(t, m.Enabled)
	assert.Equal(t, ch.ID, m.ChannelID)
	assert.Equal(t, role.ID, m.RoleID)
	assert.Equal(t, d.admins.Created[0].ID, m.AdministratorID)
	require.NotNil(t, m.QRAssetID)
	assert.NotEmpty(t, m.QRAssetSource)

	// QR payload is the uuid, and the temp file was cleaned up
	require.Len(t, d.qrPayloads, 1)
	assert.Equal(t, m.UUID, d.qrPayloads[0])
	entries, err := os.ReadDir(svc.qrDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Equal(t, []string{"merchant.created"}, d.events.Published)

	got, err := svc.FindOne(m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, m.UUID, got.UUID)
}

func TestCreateDuplicateCompanyCode(t *testing.T) {
	svc, d := newTestService(t)

	_, err := svc.Create(validCreateReq())
	require.NoError(t, err)

	_, err = svc.Create(validCreateReq())
	require.Error(t, err)
	var ce constant.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constant.CodeMerchantCreateChannel, ce.Code())

	// only the first merchant exists
	_, total, err := d.store.List(dto.MerchantListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, d.channels.Created, 1)
}

func TestCreateAdministratorFailureLeavesOrphans(t *testing.T) {
	svc, d := newTestService(t)
	d.admins.ShouldFail = true

	_, err := svc.Create(validCreateReq())
	require.Error(t, err)

	// no merchant row, but the channel and role provisioned before the
	// failing step are left in place
	_, total, err := d.store.List(dto.MerchantListQuery{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Len(t, d.channels.Created, 1)
	assert.Len(t, d.roles.Created, 1)
	assert.Empty(t, d.events.Published)
}

func TestCreateQRAssetFailureKeepsRow(t *testing.T) {
	svc, d := newTestService(t)
	d.assets.ShouldFailFile = true

	_, err := svc.Create(validCreateReq())
	require.Error(t, err)
	var ce constant.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constant.CodeMerchantCreateQRAsset, ce.Code())

	// the first save already happened, so the row survives without QR fields
	items, total, err := d.store.List(dto.MerchantListQuery{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.NotEmpty(t, items[0].UUID)
	assert.Nil(t, items[0].QRAssetID)
	assert.Empty(t, items[0].QRAssetSource)
}

func TestFindOneByUUIDMatchesFindOne(t *testing.T) {
	svc, _ := newTestService(t)

	m, err := svc.Create(validCreateReq())
	require.NoError(t, err)

	byID, err := svc.FindOne(m.ID)
	require.NoError(t, err)
	byUUID, err := svc.FindOneByUUID(m.UUID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.NotNil(t, byUUID)
	assert.Equal(t, byID.ID, byUUID.ID)
	assert.Equal(t, byID.CompanyCode, byUUID.CompanyCode)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc, d := newTestService(t)

	m, err := svc.Create(validCreateReq())
	require.NoError(t, err)

	newName := "Acme Holdings"
	enabled := false
	updated, err := svc.Update(dto.UpdateMerchantReq{
		ID:          m.ID,
		CompanyName: &newName,
		Enabled:     &enabled,
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings", updated.CompanyName)
	assert.False(t, updated.Enabled)
	// untouched fields keep their values
	assert.Equal(t, "ACME", updated.CompanyCode)
	assert.Equal(t, "1 Raffles Place", updated.CompanyAddress)
	assert.Equal(t, "hello@acme.example", updated.CustomerContactEmail)

	// administrator update carried only nil fields
	assert.Equal(t, m.AdministratorID, d.admins.LastUpdate.ID)
	assert.Nil(t, d.admins.LastUpdate.FirstName)
	assert.Nil(t, d.admins.LastUpdate.EmailAddress)
	assert.Nil(t, d.admins.LastUpdate.Password)

	assert.Equal(t, []string{"merchant.created", "merchant.updated"}, d.events.Published)
}

func TestUpdateRotatesAdministratorCredentials(t *testing.T) {
	svc, d := newTestService(t)

	m, err := svc.Create(validCreateReq())
	require.NoError(t, err)

	email := "new-ada@acme.example"
	password := "rotated-pass"
	_, err = svc.Update(dto.UpdateMerchantReq{
		ID:            m.ID,
		AdminEmail:    &email,
		AdminPassword: &password,
	})
	require.NoError(t, err)

	require.NotNil(t, d.admins.LastUpdate.EmailAddress)
	assert.Equal(t, email, *d.admins.LastUpdate.EmailAddress)
	require.NotNil(t, d.admins.LastUpdate.Password)
	assert.Equal(t, password, *d.admins.LastUpdate.Password)
	assert.Equal(t, email, d.admins.Created[0].EmailAddress)
}

func TestUpdateUnknownMerchant(t *testing.T) {
	svc, _ := newTestService(t)

	name := "nobody"
	_, err := svc.Update(dto.UpdateMerchantReq{ID: 42, CompanyName: &name})
	require.Error(t, err)
	var ce constant.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constant.CodeMerchantNotFound, ce.Code())
}

func TestSoftDeleteSparesChannelAndRole(t *testing.T) {
	svc, d := newTestService(t)

	m, err := svc.Create(validCreateReq())
	require.NoError(t, err)

	resp, err := svc.SoftDelete(m.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.DeletionResultDeleted, resp.Result)

	// merchant and administrator are tombstoned
	got, err := svc.FindOne(m.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, d.admins.Deleted[m.AdministratorID])

	// channel and role stay behind
	assert.Len(t, d.channels.Created, 1)
	assert.Len(t, d.roles.Created, 1)

	// and the uuid no longer resolves
	byUUID, err := svc.FindOneByUUID(m.UUID)
	require.NoError(t, err)
	assert.Nil(t, byUUID)

	assert.Equal(t, []string{"merchant.created", "merchant.deleted"}, d.events.Published)
}

func TestSoftDeleteUnknownMerchant(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SoftDelete(42)
	require.Error(t, err)
	var ce constant.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, constant.CodeMerchantNotFound, ce.Code())
}

func TestCreateWithDocument(t *testing.T) {
	svc, d := newTestService(t)

	req := validCreateReq()
	req.Document = &dto.FilePayload{Name: "registration.pdf", Data: []byte("%PDF-1.4")}
	m, err := svc.Create(req)
	require.NoError(t, err)

	require.NotNil(t, m.DocumentAssetID)
	assert.NotEmpty(t, m.DocumentAssetSource)
	// document asset plus QR asset
	assert.Len(t, d.assets.Created, 2)
}

func TestPublicProfileForProduct(t *testing.T) {
	svc, _ := newTestService(t)

	m, err := svc.Create(validCreateReq())
	require.NoError(t, err)

	defaultCh := model.Channel{ID: config.C.Platform.DefaultChannelID, Code: "__default_channel__"}
	merchantCh := model.Channel{ID: m.ChannelID, Code: m.CompanyCode}

	t.Run("default channel only", func(t *testing.T) {
		vo, err := svc.PublicProfileForProduct([]model.Channel{defaultCh})
		require.NoError(t, err)
		assert.Nil(t, vo)
	})

	t.Run("merchant channel resolves redacted profile", func(t *testing.T) {
		vo, err := svc.PublicProfileForProduct([]model.Channel{defaultCh, merchantCh})
		require.NoError(t, err)
		require.NotNil(t, vo)
		assert.Equal(t, "Acme Pte. Ltd.", vo.CompanyName)
		assert.Equal(t, "hello@acme.example", vo.CustomerContactEmail)
	})

	t.Run("deleted merchant resolves to nothing", func(t *testing.T) {
		_, err := svc.SoftDelete(m.ID)
		require.NoError(t, err)
		vo, err := svc.PublicProfileForProduct([]model.Channel{defaultCh, merchantCh})
		require.NoError(t, err)
		assert.Nil(t, vo)
	})
}

func TestCreateMenzzScenario(t *testing.T) {
	svc, d := newTestService(t)

	enabled := true
	in := dto.CreateMerchantReq{
		CompanyCode:          "MENZZ",
		CompanyName:          "Menzz Co. Ltd.",
		CompanyAddress:       "Kirtipur-2, Kathmandu",
		CompanyDescription:   "All about men's grooming",
		CustomerContactEmail: "info@menzz.co",
		CustomerContactPhone: "9840260599",
		AdminPhoneNumber:     "9843437928",
		Enabled:              &enabled,
		AdminFirstName:       "Biplab",
		AdminLastName:        "Karki",
		AdminEmail:           "biplab@menzz.co",
		AdminPassword:        "Meriaama1234#",
	}
	m, err := svc.Create(in)
	require.NoError(t, err)

	assert.Equal(t, "MENZZ", d.channels.Created[0].Code)
	assert.Equal(t, "MENZZ", d.roles.Created[0].Code)
	assert.True(t, strings.HasPrefix(d.assets.Created[0].Name, "menzz"))

	// projected fields equal the input's profile fields, plus generated ids
	assert.NotZero(t, m.ID)
	assert.NotEmpty(t, m.UUID)
	assert.Equal(t, in.CompanyCode, m.CompanyCode)
	assert.Equal(t, in.CompanyName, m.CompanyName)
	assert.Equal(t, in.CompanyAddress, m.CompanyAddress)
	assert.Equal(t, in.CompanyDescription, m.CompanyDescription)
	assert.Equal(t, in.CustomerContactEmail, m.CustomerContactEmail)
	assert.Equal(t, in.CustomerContactPhone, m.CustomerContactPhone)
	assert.Equal(t, in.AdminPhoneNumber, m.AdminPhoneNumber)
	assert.True(t, m.Enabled)

	items, total, err := svc.FindAll(dto.MerchantListQuery{Kw: "MENZZ"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, m.ID, items[0].ID)
}
