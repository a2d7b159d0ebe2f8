package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"toolhub/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "toolhub/contexts/identity-access/authorization-service/domain/errors"
	"toolhub/contexts/identity-access/authorization-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// GetRole resolves the static role catalog. Role definitions are code-owned;
// only assignments live in the database.
func (r *Repository) GetRole(ctx context.Context, roleID string) (entities.Role, error) {
	switch roleID {
	case ports.RoleAdmin:
		return entities.Role{
			RoleID: ports.RoleAdmin,
			Permissions: []string{
				ports.PermissionOrdersListAll,
				ports.PermissionUsersList,
				ports.PermissionUsersGrant,
				ports.PermissionToolsManage,
				ports.PermissionBlogsManage,
			},
		}, nil
	case ports.RoleCustomer:
		return entities.Role{RoleID: ports.RoleCustomer, Permissions: []string{}}, nil
	default:
		return entities.Role{}, domainerrors.ErrRoleNotFound
	}
}

func (r *Repository) GrantRole(ctx context.Context, assignment entities.RoleAssignment) error {
	row := roleAssignmentModel{
		Email:     assignment.Email,
		RoleID:    assignment.RoleID,
		GrantedBy: assignment.GrantedBy,
		GrantedAt: assignment.GrantedAt.UTC(),
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}, {Name: "role_id"}},
		DoNothing: true,
	}).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domainerrors.ErrRoleAlreadyAssigned
	}
	return nil
}

func (r *Repository) RevokeRole(ctx context.Context, email string, roleID string) error {
	tx := r.db.WithContext(ctx).
		Where("email = ? AND role_id = ?", email, roleID).
		Delete(&roleAssignmentModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domainerrors.ErrRoleNotAssigned
	}
	return nil
}

func (r *Repository) ListRoles(ctx context.Context, email string) ([]entities.RoleAssignment, error) {
	var rows []roleAssignmentModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("granted_at ASC").
		Find(&rows).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	items := make([]entities.RoleAssignment, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.RoleAssignment{
			Email:     row.Email,
			RoleID:    row.RoleID,
			GrantedBy: row.GrantedBy,
			GrantedAt: row.GrantedAt,
		})
	}
	return items, nil
}

type roleAssignmentModel struct {
	Email     string    `gorm:"column:email;primaryKey"`
	RoleID    string    `gorm:"column:role_id;primaryKey"`
	GrantedBy string    `gorm:"column:granted_by"`
	GrantedAt time.Time `gorm:"column:granted_at"`
}

func (roleAssignmentModel) TableName() string {
	return "role_assignments"
}

var _ ports.Repository = (*Repository)(nil)
