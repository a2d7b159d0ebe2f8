package unit

import (
	"context"
	"errors"
	"testing"

	authorization "toolhub/contexts/identity-access/authorization-service"
	domainerrors "toolhub/contexts/identity-access/authorization-service/domain/errors"
	"toolhub/contexts/identity-access/authorization-service/ports"
)

func TestAuthorizationGrantEnablesAdminPermissions(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	ctx := context.Background()

	allowed, err := module.Service.CheckPermission(ctx, "alice@example.com", ports.PermissionOrdersListAll)
	if err != nil {
		t.Fatalf("check before grant failed: %v", err)
	}
	if allowed {
		t.Fatalf("expected no permission before grant")
	}

	if _, err := module.Service.GrantRole(ctx, "alice@example.com", "system", ports.RoleAdmin); err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	for _, permission := range []string{
		ports.PermissionOrdersListAll,
		ports.PermissionUsersList,
		ports.PermissionToolsManage,
		ports.PermissionBlogsManage,
	} {
		allowed, err := module.Service.CheckPermission(ctx, "alice@example.com", permission)
		if err != nil {
			t.Fatalf("check %q failed: %v", permission, err)
		}
		if !allowed {
			t.Fatalf("expected admin to hold %q", permission)
		}
	}
}

func TestAuthorizationGrantRequiresAdminActor(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	ctx := context.Background()

	_, err := module.Service.GrantRole(ctx, "bob@example.com", "mallory@example.com", ports.RoleAdmin)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin actor, got %v", err)
	}

	if _, err := module.Service.GrantRole(ctx, "root@example.com", "system", ports.RoleAdmin); err != nil {
		t.Fatalf("system grant failed: %v", err)
	}
	if _, err := module.Service.GrantRole(ctx, "bob@example.com", "root@example.com", ports.RoleAdmin); err != nil {
		t.Fatalf("admin-actor grant failed: %v", err)
	}
}

func TestAuthorizationRevokeRemovesPermissions(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.Service.GrantRole(ctx, "root@example.com", "system", ports.RoleAdmin); err != nil {
		t.Fatalf("seed root admin failed: %v", err)
	}
	if _, err := module.Service.GrantRole(ctx, "alice@example.com", "system", ports.RoleAdmin); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if err := module.Service.RevokeRole(ctx, "alice@example.com", "root@example.com", ports.RoleAdmin); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	admin, err := module.Service.IsAdmin(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("is-admin check failed: %v", err)
	}
	if admin {
		t.Fatalf("expected admin flag cleared after revoke")
	}
}

func TestAuthorizationRejectsUnknownRole(t *testing.T) {
	module := authorization.NewInMemoryModule(nil)

	_, err := module.Service.GrantRole(context.Background(), "alice@example.com", "system", "superuser")
	if !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unknown role, got %v", err)
	}
}
