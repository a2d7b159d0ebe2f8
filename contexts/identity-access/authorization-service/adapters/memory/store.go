package memory

import (
	"context"
	"sync"

	"toolhub/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "toolhub/contexts/identity-access/authorization-service/domain/errors"
	"toolhub/contexts/identity-access/authorization-service/ports"
)

type Store struct {
	mu sync.RWMutex

	rolesByID          map[string]entities.Role
	assignmentsByEmail map[string][]entities.RoleAssignment
}

func NewStore() *Store {
	return &Store{
		rolesByID: map[string]entities.Role{
			ports.RoleAdmin: {
				RoleID: ports.RoleAdmin,
				Permissions: []string{
					ports.PermissionOrdersListAll,
					ports.PermissionUsersList,
					ports.PermissionUsersGrant,
					ports.PermissionToolsManage,
					ports.PermissionBlogsManage,
				},
			},
			ports.RoleCustomer: {
				RoleID:      ports.RoleCustomer,
				Permissions: []string{},
			},
		},
		assignmentsByEmail: make(map[string][]entities.RoleAssignment),
	}
}

func (s *Store) GetRole(ctx context.Context, roleID string) (entities.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, ok := s.rolesByID[roleID]
	if !ok {
		return entities.Role{}, domainerrors.ErrRoleNotFound
	}
	return role, nil
}

func (s *Store) GrantRole(ctx context.Context, assignment entities.RoleAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rolesByID[assignment.RoleID]; !ok {
		return domainerrors.ErrRoleNotFound
	}
	for _, existing := range s.assignmentsByEmail[assignment.Email] {
		if existing.RoleID == assignment.RoleID {
			return domainerrors.ErrRoleAlreadyAssigned
		}
	}
	s.assignmentsByEmail[assignment.Email] = append(s.assignmentsByEmail[assignment.Email], assignment)
	return nil
}

func (s *Store) RevokeRole(ctx context.Context, email string, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments := s.assignmentsByEmail[email]
	for i, existing := range assignments {
		if existing.RoleID == roleID {
			s.assignmentsByEmail[email] = append(assignments[:i], assignments[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrRoleNotAssigned
}

func (s *Store) ListRoles(ctx context.Context, email string) ([]entities.RoleAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assignments := s.assignmentsByEmail[email]
	out := make([]entities.RoleAssignment, len(assignments))
	copy(out, assignments)
	return out, nil
}

var _ ports.Repository = (*Store)(nil)
