package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "toolhub/contexts/identity-access/user-service/domain/errors"
	"toolhub/contexts/identity-access/user-service/ports"
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

func (r *Repository) Upsert(ctx context.Context, user ports.User, now time.Time) (ports.User, error) {
	row := userModel{
		Email:     user.Email,
		Name:      user.Name,
		Education: user.Education,
		Location:  user.Location,
		Phone:     user.Phone,
		LinkedIn:  user.LinkedIn,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       row.Name,
			"education":  row.Education,
			"location":   row.Location,
			"phone":      row.Phone,
			"linked_in":  row.LinkedIn,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return ports.User{}, err
	}

	var stored userModel
	if err := r.db.WithContext(ctx).Where("email = ?", user.Email).First(&stored).Error; err != nil {
		return ports.User{}, err
	}
	return stored.toEntity(), nil
}

func (r *Repository) Get(ctx context.Context, email string) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, domainerrors.ErrUserNotFound
		}
		return ports.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]ports.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("email ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type userModel struct {
	Email     string    `gorm:"column:email;primaryKey"`
	Name      string    `gorm:"column:name"`
	Education string    `gorm:"column:education"`
	Location  string    `gorm:"column:location"`
	Phone     string    `gorm:"column:phone"`
	LinkedIn  string    `gorm:"column:linked_in"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() ports.User {
	return ports.User{
		Email:     m.Email,
		Name:      m.Name,
		Education: m.Education,
		Location:  m.Location,
		Phone:     m.Phone,
		LinkedIn:  m.LinkedIn,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

var _ ports.Repository = (*Repository)(nil)
