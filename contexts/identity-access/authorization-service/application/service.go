package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"toolhub/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "toolhub/contexts/identity-access/authorization-service/domain/errors"
	domainservices "toolhub/contexts/identity-access/authorization-service/domain/services"
	"toolhub/contexts/identity-access/authorization-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// GrantRole assigns a role to the subject email. The actor must itself hold
// the users.grant_admin permission unless the grant is a bootstrap seed
// (actorEmail == "system").
func (s Service) GrantRole(ctx context.Context, email string, actorEmail string, roleID string) (entities.RoleAssignment, error) {
	email = strings.TrimSpace(email)
	actorEmail = strings.TrimSpace(actorEmail)
	roleID = strings.TrimSpace(roleID)
	if email == "" || actorEmail == "" || !ports.IsValidRole(roleID) {
		return entities.RoleAssignment{}, domainerrors.ErrInvalidRequest
	}

	if actorEmail != "system" {
		allowed, err := s.CheckPermission(ctx, actorEmail, ports.PermissionUsersGrant)
		if err != nil {
			return entities.RoleAssignment{}, err
		}
		if !allowed {
			return entities.RoleAssignment{}, domainerrors.ErrForbidden
		}
	}

	assignment := entities.RoleAssignment{
		Email:     email,
		RoleID:    roleID,
		GrantedBy: actorEmail,
		GrantedAt: s.now(),
	}
	if err := s.Repo.GrantRole(ctx, assignment); err != nil {
		return entities.RoleAssignment{}, err
	}

	resolveLogger(s.Logger).Info("role granted",
		"event", "authz_role_granted",
		"module", "identity-access/authorization-service",
		"layer", "application",
		"email", email,
		"role_id", roleID,
		"granted_by", actorEmail,
	)
	return assignment, nil
}

func (s Service) RevokeRole(ctx context.Context, email string, actorEmail string, roleID string) error {
	email = strings.TrimSpace(email)
	actorEmail = strings.TrimSpace(actorEmail)
	roleID = strings.TrimSpace(roleID)
	if email == "" || actorEmail == "" || !ports.IsValidRole(roleID) {
		return domainerrors.ErrInvalidRequest
	}

	allowed, err := s.CheckPermission(ctx, actorEmail, ports.PermissionUsersGrant)
	if err != nil {
		return err
	}
	if !allowed {
		return domainerrors.ErrForbidden
	}
	return s.Repo.RevokeRole(ctx, email, roleID)
}

func (s Service) ListRoles(ctx context.Context, email string) ([]entities.RoleAssignment, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	return s.Repo.ListRoles(ctx, email)
}

// CheckPermission resolves the subject's assigned roles through the policy
// engine. A subject with no assignments has no elevated permissions.
func (s Service) CheckPermission(ctx context.Context, email string, permission string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(permission) == "" {
		return false, domainerrors.ErrInvalidRequest
	}

	assignments, err := s.Repo.ListRoles(ctx, email)
	if err != nil {
		return false, err
	}
	roles := make([]entities.Role, 0, len(assignments))
	for _, assignment := range assignments {
		role, err := s.Repo.GetRole(ctx, assignment.RoleID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrRoleNotFound) {
				continue
			}
			return false, err
		}
		roles = append(roles, role)
	}
	return domainservices.Allows(roles, permission), nil
}

// IsAdmin reports whether the subject holds the admin role.
func (s Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	assignments, err := s.ListRoles(ctx, email)
	if err != nil {
		return false, err
	}
	for _, assignment := range assignments {
		if assignment.RoleID == ports.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
