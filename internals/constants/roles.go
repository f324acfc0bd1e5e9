package constants

const (
	RoleAdmin       = "ADMIN"
	RoleEmployee    = "EMPLOYEE"
	RoleSaleOfficer = "SALEOFFICER"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleSaleOfficer:
		return true
	}
	return false
}
