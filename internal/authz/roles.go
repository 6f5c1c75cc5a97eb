package authz

const (
	RoleStudent    = 10
	RoleSupervisor = 30
	RoleAdmin      = 50
)

func IsElevated(roleID int) bool {
	return roleID == RoleSupervisor || roleID == RoleAdmin
}

func IsReadOnly(roleID int) bool {
	return roleID == RoleSupervisor
}
