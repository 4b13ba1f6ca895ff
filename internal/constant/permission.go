package constant

// Permission is a platform authorization primitive. Roles bundle permissions,
// optionally scoped to channels.
type Permission string

const (
	SuperAdmin Permission = "SuperAdmin"

	CreateChannel Permission = "CreateChannel"
	ReadChannel   Permission = "ReadChannel"
	UpdateChannel Permission = "UpdateChannel"
	DeleteChannel Permission = "DeleteChannel"

	CreateAdministrator Permission = "CreateAdministrator"
	ReadAdministrator   Permission = "ReadAdministrator"
	UpdateAdministrator Permission = "UpdateAdministrator"
	DeleteAdministrator Permission = "DeleteAdministrator"

	ReadOrder   Permission = "ReadOrder"
	UpdateOrder Permission = "UpdateOrder"
	DeleteOrder Permission = "DeleteOrder"

	ReadProduct   Permission = "ReadProduct"
	UpdateProduct Permission = "UpdateProduct"
	DeleteProduct Permission = "DeleteProduct"

	ReadCustomer   Permission = "ReadCustomer"
	UpdateCustomer Permission = "UpdateCustomer"
	DeleteCustomer Permission = "DeleteCustomer"
)

// SuperAdminRoleCode marks the platform-wide role granted access to every
// merchant channel during provisioning.
const SuperAdminRoleCode = "__super_admin_role__"

// MerchantPermissions is the fixed grant set for a merchant role: control of
// orders, products and customers inside the merchant's own channel.
var MerchantPermissions = []Permission{
	ReadOrder, UpdateOrder, DeleteOrder,
	ReadProduct, UpdateProduct, DeleteProduct,
	ReadCustomer, UpdateCustomer, DeleteCustomer,
}
