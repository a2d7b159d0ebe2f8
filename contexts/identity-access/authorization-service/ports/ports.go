package ports

import (
	"context"
	"time"

	"toolhub/contexts/identity-access/authorization-service/domain/entities"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	PermissionOrdersListAll = "orders.list_all"
	PermissionUsersList     = "users.list"
	PermissionUsersGrant    = "users.grant_admin"
	PermissionToolsManage   = "tools.manage"
	PermissionBlogsManage   = "blogs.manage"
)

func IsValidRole(roleID string) bool {
	switch roleID {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

type Clock interface {
	Now() time.Time
}

type Repository interface {
	GetRole(ctx context.Context, roleID string) (entities.Role, error)
	GrantRole(ctx context.Context, assignment entities.RoleAssignment) error
	RevokeRole(ctx context.Context, email string, roleID string) error
	ListRoles(ctx context.Context, email string) ([]entities.RoleAssignment, error)
}
