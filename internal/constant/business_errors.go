package constant

// 系统级错误码 (0/1xxx)
const (
	CodeSuccess       = 0
	CodeSystemError   = 1000
	CodeDatabaseError = 1001
	CodeBadRequest    = 1002
	CodeUnauthorized  = 1003
	CodeForbidden     = 1004
)

// 商户相关错误码 (2xxx)
const (
	CodeMerchantNotFound       = 2000 // lookup by id/uuid/channel found nothing active
	CodeMerchantCreateChannel  = 2001 // channel provisioning rejected (e.g. duplicate company code)
	CodeMerchantCreateQRAsset  = 2002 // QR asset registration rejected
	CodeMerchantCreateDocument = 2003 // document asset registration rejected
)

// 平台资源相关错误码 (3xxx)
const (
	CodeChannelCodeTaken       = 3000
	CodeRoleNotFound           = 3001
	CodeSuperAdminRoleMissing  = 3002
	CodeAdministratorNotFound  = 3003
	CodeAdministratorEmailUsed = 3004
	CodeAssetStorageFailed     = 3005
	CodeLoginFailed            = 3006
)
