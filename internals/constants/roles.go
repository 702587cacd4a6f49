package constants

import "fmt"

const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleStaff = "staff"
	RoleUser  = "user"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess   = "❌ Hanya staff, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess  = "❌ Hanya owner yang boleh mengakses fitur %s."
	ErrOnlyNonUserCanAccess = "❌ Hanya role selain 'user' yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

func RoleErrorNonUser(feature string) string {
	return fmt.Sprintf(ErrOnlyNonUserCanAccess, feature)
}
