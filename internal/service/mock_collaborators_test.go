package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/idgen"
	"mkt-merchant-api/internal/model"
)

var errMockFailure = errors.New("mock collaborator failure")

func init() {
	_ = idgen.InitNode("default", 1)
}

type mockChannelService struct {
	Created    []*model.Channel
	LastInput  dto.CreateChannelInput
	ShouldFail bool
}

func (m *mockChannelService) Create(in dto.CreateChannelInput) (*model.Channel, error) {
	if m.ShouldFail {
		return nil, errMockFailure
	}
	for _, ch := range m.Created {
		if ch.Code == in.Code {
			return nil, constant.NewError(constant.CodeChannelCodeTaken)
		}
	}
	m.LastInput = in
	ch := &model.Channel{
		ID:                    idgen.New(),
		Code:                  in.Code,
		Token:                 in.Token,
		DefaultLanguageCode:   in.DefaultLanguageCode,
		PricesIncludeTax:      in.PricesIncludeTax,
		CurrencyCode:          in.CurrencyCode,
		DefaultTaxZoneID:      in.DefaultTaxZoneID,
		DefaultShippingZoneID: in.DefaultShippingZoneID,
	}
	m.Created = append(m.Created, ch)
	return ch, nil
}

type mockRoleService struct {
	superAdmin  *model.Role
	Created     []*model.Role
	Assignments map[uint64][]uint64 // roleID -> channelIDs
	LastInput   dto.CreateRoleInput
	ShouldFail  bool
}

func newMockRoleService() *mockRoleService {
	return &mockRoleService{
		superAdmin: &model.Role{
			ID:   idgen.New(),
			Code: constant.SuperAdminRoleCode,
		},
		Assignments: map[uint64][]uint64{},
	}
}

func (m *mockRoleService) Create(in dto.CreateRoleInput) (*model.Role, error) {
	if m.ShouldFail {
		return nil, errMockFailure
	}
	m.LastInput = in
	role := &model.Role{
		ID:          idgen.New(),
		Code:        in.Code,
		Description: in.Description,
	}
	m.Created = append(m.Created, role)
	for _, chID := range in.ChannelIDs {
		m.Assignments[role.ID] = append(m.Assignments[role.ID], chID)
	}
	return role, nil
}

func (m *mockRoleService) GetSuperAdminRole() (*model.Role, error) {
	return m.superAdmin, nil
}

func (m *mockRoleService) AssignRoleToChannel(roleID, channelID uint64) error {
	m.Assignments[roleID] = append(m.Assignments[roleID], channelID)
	return nil
}

type mockAdministratorService struct {
	Created    []*model.Administrator
	Deleted    map[uint64]bool
	LastUpdate dto.UpdateAdministratorInput
	ShouldFail bool
}

func newMockAdministratorService() *mockAdministratorService {
	return &mockAdministratorService{Deleted: map[uint64]bool{}}
}

func (m *mockAdministratorService) Create(in dto.CreateAdministratorInput) (*model.Administrator, error) {
	if m.ShouldFail {
		return nil, errMockFailure
	}
	admin := &model.Administrator{
		ID:           idgen.New(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
	}
	m.Created = append(m.Created, admin)
	return admin, nil
}

func (m *mockAdministratorService) Update(in dto.UpdateAdministratorInput) (*model.Administrator, error) {
	if m.ShouldFail {
		return nil, errMockFailure
	}
	m.LastUpdate = in
	for _, admin := range m.Created {
		if admin.ID == in.ID {
			if in.FirstName != nil {
				admin.FirstName = *in.FirstName
			}
			if in.LastName != nil {
				admin.LastName = *in.LastName
			}
			if in.EmailAddress != nil {
				admin.EmailAddress = *in.EmailAddress
			}
			return admin, nil
		}
	}
	return nil, constant.NewError(constant.CodeAdministratorNotFound)
}

func (m *mockAdministratorService) SoftDelete(id uint64) error {
	m.Deleted[id] = true
	return nil
}

type mockAssetService struct {
	Created        []*model.Asset
	ShouldFailFile bool
	ShouldFailData bool
}

func (m *mockAssetService) Create(name string, data []byte) (*model.Asset, error) {
	if m.ShouldFailData {
		return nil, constant.NewError(constant.CodeAssetStorageFailed)
	}
	asset := &model.Asset{
		ID:       idgen.New(),
		Name:     name,
		Source:   "assets/" + name,
		FileSize: int64(len(data)),
	}
	m.Created = append(m.Created, asset)
	return asset, nil
}

func (m *mockAssetService) CreateFromFile(path string) (*model.Asset, error) {
	if m.ShouldFailFile {
		return nil, constant.NewError(constant.CodeAssetStorageFailed)
	}
	return m.Create(pathBase(path), []byte("png"))
}

func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// memStore is an in-memory MerchantStore. Insert assigns the uuid the way
// the persistence layer does in production.
type memStore struct {
	rows map[uint64]*model.Merchant
}

func newMemStore() *memStore {
	return &memStore{rows: map[uint64]*model.Merchant{}}
}

func (s *memStore) GetByID(id uint64) (*model.Merchant, error) {
	m, ok := s.rows[id]
	if !ok || m.DeletedAt.Valid {
		return nil, nil
	}
	return m, nil
}

func (s *memStore) GetByUUID(uuid string) (*model.Merchant, error) {
	for _, m := range s.rows {
		if m.UUID == uuid && !m.DeletedAt.Valid {
			return m, nil
		}
	}
	return nil, nil
}

func (s *memStore) GetByChannelID(channelID uint64) (*model.Merchant, error) {
	for _, m := range s.rows {
		if m.ChannelID == channelID && !m.DeletedAt.Valid {
			return m, nil
		}
	}
	return nil, nil
}

func (s *memStore) List(q dto.MerchantListQuery) ([]model.Merchant, int64, error) {
	var items []model.Merchant
	for _, m := range s.rows {
		if m.DeletedAt.Valid {
			continue
		}
		if q.Kw != "" && !strings.Contains(m.CompanyCode, q.Kw) && !strings.Contains(m.CompanyName, q.Kw) {
			continue
		}
		if q.Enabled != nil && m.Enabled != *q.Enabled {
			continue
		}
		items = append(items, *m)
	}
	return items, int64(len(items)), nil
}

func (s *memStore) Insert(m *model.Merchant) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}
	s.rows[m.ID] = m
	return nil
}

func (s *memStore) Save(m *model.Merchant) error {
	s.rows[m.ID] = m
	return nil
}

func (s *memStore) SoftDelete(id uint64) error {
	if m, ok := s.rows[id]; ok {
		if err := m.DeletedAt.Scan(time.Now()); err != nil {
			return err
		}
	}
	return nil
}

type mockPublisher struct {
	Published []string
}

func (p *mockPublisher) Publish(routingKey string, msg any) error {
	p.Published = append(p.Published, routingKey)
	return nil
}
