package dto

import "time"

// FilePayload is an uploaded document carried through the create/update
// inputs. Data is the raw file content read from the multipart part.
type FilePayload struct {
	Name string
	Data []byte
}

type CreateMerchantReq struct {
	CompanyCode          string `json:"company_code" form:"company_code" binding:"required"`
	CompanyName          string `json:"company_name" form:"company_name" binding:"required"`
	CompanyAddress       string `json:"company_address" form:"company_address"`
	CompanyDescription   string `json:"company_description" form:"company_description"`
	CustomerContactEmail string `json:"customer_contact_email" form:"customer_contact_email"`
	CustomerContactPhone string `json:"customer_contact_phone" form:"customer_contact_phone"`
	AdminPhoneNumber     string `json:"admin_phone_number" form:"admin_phone_number"`
	Enabled              *bool  `json:"enabled" form:"enabled"`

	AdminFirstName string `json:"admin_first_name" form:"admin_first_name" binding:"required"`
	AdminLastName  string `json:"admin_last_name" form:"admin_last_name" binding:"required"`
	AdminEmail     string `json:"admin_email" form:"admin_email" binding:"required,email"`
	AdminPassword  string `json:"admin_password" form:"admin_password" binding:"required,min=8"`

	Document *FilePayload `json:"-" form:"-"`
}

// UpdateMerchantReq is a partial update: only non-nil fields are applied.
type UpdateMerchantReq struct {
	ID uint64 `json:"-" form:"-"`

	CompanyCode          *string `json:"company_code" form:"company_code"`
	CompanyName          *string `json:"company_name" form:"company_name"`
	CompanyAddress       *string `json:"company_address" form:"company_address"`
	CompanyDescription   *string `json:"company_description" form:"company_description"`
	CustomerContactEmail *string `json:"customer_contact_email" form:"customer_contact_email"`
	CustomerContactPhone *string `json:"customer_contact_phone" form:"customer_contact_phone"`
	AdminPhoneNumber     *string `json:"admin_phone_number" form:"admin_phone_number"`
	Enabled              *bool   `json:"enabled" form:"enabled"`

	AdminFirstName *string `json:"admin_first_name" form:"admin_first_name"`
	AdminLastName  *string `json:"admin_last_name" form:"admin_last_name"`
	AdminEmail     *string `json:"admin_email" form:"admin_email"`
	AdminPassword  *string `json:"admin_password" form:"admin_password"`

	Document *FilePayload `json:"-" form:"-"`
}

// MerchantListQuery delegates filtering/sorting to the generic list grammar:
// kw matches company code or name, sort column must be whitelisted by the dao.
type MerchantListQuery struct {
	Kw       string `form:"kw"`
	Enabled  *bool  `form:"enabled"`
	Sort     string `form:"sort"`
	Desc     bool   `form:"desc"`
	PageSize int    `form:"page_size,default=20"`
	PageNum  int    `form:"page_num,default=1"`
}

type MerchantListResp struct {
	Items      []MerchantVO `json:"items"`
	TotalItems int64        `json:"total_items"`
}

type MerchantVO struct {
	ID                   string    `json:"id"`
	UUID                 string    `json:"uuid"`
	CompanyCode          string    `json:"company_code"`
	CompanyName          string    `json:"company_name"`
	CompanyAddress       string    `json:"company_address"`
	CompanyDescription   string    `json:"company_description"`
	CustomerContactEmail string    `json:"customer_contact_email"`
	CustomerContactPhone string    `json:"customer_contact_phone"`
	AdminPhoneNumber     string    `json:"admin_phone_number"`
	Enabled              bool      `json:"enabled"`
	ChannelID            string    `json:"channel_id"`
	RoleID               string    `json:"role_id"`
	AdministratorID      string    `json:"administrator_id"`
	AdminFirstName       string    `json:"admin_first_name,omitempty"`
	AdminLastName        string    `json:"admin_last_name,omitempty"`
	AdminEmail           string    `json:"admin_email,omitempty"`
	QRAssetID            *uint64   `json:"qr_asset_id,omitempty"`
	QRAssetSource        string    `json:"qr_asset_source,omitempty"`
	DocumentAssetID      *uint64   `json:"document_asset_id,omitempty"`
	DocumentAssetSource  string    `json:"document_asset_source,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// MerchantPublicVO is the redacted projection exposed on the shop side:
// contact info only, no internal identifiers, codes or asset references.
type MerchantPublicVO struct {
	CompanyName          string `json:"company_name"`
	CompanyAddress       string `json:"company_address"`
	CompanyDescription   string `json:"company_description"`
	CustomerContactEmail string `json:"customer_contact_email"`
	CustomerContactPhone string `json:"customer_contact_phone"`
}

const DeletionResultDeleted = "DELETED"

type DeletionResp struct {
	Result string `json:"result"`
}
