package constant

var ErrorMessages = map[int]string{
	CodeSuccess:       "success",
	CodeSystemError:   "system error",
	CodeDatabaseError: "database error",
	CodeBadRequest:    "bad request",
	CodeUnauthorized:  "unauthorized",
	CodeForbidden:     "permission denied",

	CodeMerchantNotFound:       "merchant not found",
	CodeMerchantCreateChannel:  "error creating merchant channel",
	CodeMerchantCreateQRAsset:  "error creating merchant QR asset",
	CodeMerchantCreateDocument: "error creating merchant document asset",

	CodeChannelCodeTaken:       "channel code already in use",
	CodeRoleNotFound:           "role not found",
	CodeSuperAdminRoleMissing:  "superadmin role missing",
	CodeAdministratorNotFound:  "administrator not found",
	CodeAdministratorEmailUsed: "administrator email already in use",
	CodeAssetStorageFailed:     "asset storage failed",
	CodeLoginFailed:            "invalid email or password",
}
