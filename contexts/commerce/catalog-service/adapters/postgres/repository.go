package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	domainerrors "toolhub/contexts/commerce/catalog-service/domain/errors"
	"toolhub/contexts/commerce/catalog-service/ports"
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

func (r *Repository) Create(ctx context.Context, tool ports.Tool, now time.Time) (ports.Tool, error) {
	row := toModel(tool)
	row.CreatedAt = now.UTC()
	row.UpdatedAt = now.UTC()
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return ports.Tool{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) List(ctx context.Context) ([]ports.Tool, error) {
	var rows []toolModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ports.Tool, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, toolID string) (ports.Tool, error) {
	var row toolModel
	err := r.db.WithContext(ctx).Where("tool_id = ?", toolID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Tool{}, domainerrors.ErrToolNotFound
		}
		return ports.Tool{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Delete(ctx context.Context, toolID string) error {
	tx := r.db.WithContext(ctx).Where("tool_id = ?", toolID).Delete(&toolModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domainerrors.ErrToolNotFound
	}
	return nil
}

type toolModel struct {
	ToolID       string    `gorm:"column:tool_id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Description  string    `gorm:"column:description"`
	ImageURL     string    `gorm:"column:image_url"`
	UnitPrice    float64   `gorm:"column:unit_price"`
	MinOrderQty  int       `gorm:"column:min_order_qty"`
	AvailableQty int       `gorm:"column:available_qty"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (toolModel) TableName() string {
	return "tools"
}

func toModel(tool ports.Tool) toolModel {
	return toolModel{
		ToolID:       tool.ToolID,
		Name:         tool.Name,
		Description:  tool.Description,
		ImageURL:     tool.ImageURL,
		UnitPrice:    tool.UnitPrice,
		MinOrderQty:  tool.MinOrderQty,
		AvailableQty: tool.AvailableQty,
		CreatedAt:    tool.CreatedAt,
		UpdatedAt:    tool.UpdatedAt,
	}
}

func (m toolModel) toEntity() ports.Tool {
	return ports.Tool{
		ToolID:       m.ToolID,
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		UnitPrice:    m.UnitPrice,
		MinOrderQty:  m.MinOrderQty,
		AvailableQty: m.AvailableQty,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

var _ ports.Repository = (*Repository)(nil)
