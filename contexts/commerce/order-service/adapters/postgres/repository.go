package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "toolhub/contexts/commerce/order-service/domain/errors"
	"toolhub/contexts/commerce/order-service/ports"
	"toolhub/internal/shared/outbox"
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

func (r *Repository) Create(ctx context.Context, order ports.Order, now time.Time) (ports.Order, error) {
	row := toModel(order)
	row.CreatedAt = now.UTC()
	row.UpdatedAt = now.UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return appendOutbox(tx, ports.EventTypeOrderCreated, row, now)
	})
	if err != nil {
		return ports.Order{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]ports.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByEmail(ctx context.Context, email string) ([]ports.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByEmailAndPaid(ctx context.Context, email string, paid bool) ([]ports.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Where("user_email = ? AND paid = ?", email, paid).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) Upsert(ctx context.Context, orderID string, ownerEmail string, patch ports.OrderPatch, now time.Time) (ports.UpsertResult, error) {
	var result ports.UpsertResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row orderModel
		err := tx.Where("order_id = ?", orderID).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = orderModel{
				OrderID:   orderID,
				UserEmail: ownerEmail,
				Status:    ports.StatusPending,
				CreatedAt: now.UTC(),
				UpdatedAt: now.UTC(),
			}
			applyPatchToModel(&row, patch)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			result = ports.UpsertResult{Order: row.toEntity(), Created: true}
			return nil
		case err != nil:
			return err
		}

		assignments := patchAssignments(patch)
		assignments["updated_at"] = now.UTC()
		if err := tx.Model(&orderModel{}).
			Where("order_id = ?", orderID).
			Updates(assignments).
			Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", orderID).First(&row).Error; err != nil {
			return err
		}
		result = ports.UpsertResult{Order: row.toEntity(), Created: false}
		return nil
	})
	if err != nil {
		return ports.UpsertResult{}, err
	}
	return result, nil
}

func (r *Repository) MarkPaid(ctx context.Context, orderID string, transactionID string, now time.Time) (ports.Order, error) {
	var row orderModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrOrderNotFound
			}
			return err
		}
		if row.Paid {
			return nil
		}
		row.Paid = true
		row.TransactionID = transactionID
		row.UpdatedAt = now.UTC()
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		return appendOutbox(tx, ports.EventTypeOrderPaid, row, now)
	})
	if err != nil {
		return ports.Order{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Delete(ctx context.Context, orderID string) (ports.DeleteResult, error) {
	tx := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&orderModel{})
	if tx.Error != nil {
		return ports.DeleteResult{}, tx.Error
	}
	return ports.DeleteResult{OrderID: orderID, Deleted: tx.RowsAffected > 0}, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []orderOutboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:   row.OutboxID,
			EventType:  row.EventType,
			Payload:    []byte(row.Payload),
			Status:     row.Status,
			RetryCount: row.RetryCount,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&orderOutboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       outbox.StatusPublished,
			"published_at": now.UTC(),
		}).
		Error
}

func appendOutbox(tx *gorm.DB, eventType string, row orderModel, now time.Time) error {
	event := ports.OrderEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OrderID:    row.OrderID,
		UserEmail:  row.UserEmail,
		TotalPrice: row.TotalPrice,
		OccurredAt: now.UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Create(&orderOutboxModel{
		OutboxID:  uuid.NewString(),
		EventType: eventType,
		Payload:   string(payload),
		Status:    outbox.StatusPending,
		CreatedAt: now.UTC(),
	}).Error
}

type orderModel struct {
	OrderID       string    `gorm:"column:order_id;primaryKey"`
	UserEmail     string    `gorm:"column:user_email;index"`
	UserName      string    `gorm:"column:user_name"`
	ToolID        string    `gorm:"column:tool_id"`
	ToolName      string    `gorm:"column:tool_name"`
	Quantity      int       `gorm:"column:quantity"`
	UnitPrice     float64   `gorm:"column:unit_price"`
	TotalPrice    float64   `gorm:"column:total_price"`
	Address       string    `gorm:"column:address"`
	Phone         string    `gorm:"column:phone"`
	Status        string    `gorm:"column:status"`
	Paid          bool      `gorm:"column:paid"`
	TransactionID string    `gorm:"column:transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (orderModel) TableName() string {
	return "orders"
}

type orderOutboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     string     `gorm:"column:payload"`
	Status      string     `gorm:"column:status;index"`
	RetryCount  int        `gorm:"column:retry_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (orderOutboxModel) TableName() string {
	return "order_outbox"
}

func toModel(order ports.Order) orderModel {
	return orderModel{
		OrderID:       order.OrderID,
		UserEmail:     order.UserEmail,
		UserName:      order.UserName,
		ToolID:        order.ToolID,
		ToolName:      order.ToolName,
		Quantity:      order.Quantity,
		UnitPrice:     order.UnitPrice,
		TotalPrice:    order.TotalPrice,
		Address:       order.Address,
		Phone:         order.Phone,
		Status:        order.Status,
		Paid:          order.Paid,
		TransactionID: order.TransactionID,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func (m orderModel) toEntity() ports.Order {
	return ports.Order{
		OrderID:       m.OrderID,
		UserEmail:     m.UserEmail,
		UserName:      m.UserName,
		ToolID:        m.ToolID,
		ToolName:      m.ToolName,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		TotalPrice:    m.TotalPrice,
		Address:       m.Address,
		Phone:         m.Phone,
		Status:        m.Status,
		Paid:          m.Paid,
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toEntities(rows []orderModel) []ports.Order {
	items := make([]ports.Order, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func applyPatchToModel(row *orderModel, patch ports.OrderPatch) {
	if patch.UserName != nil {
		row.UserName = *patch.UserName
	}
	if patch.ToolID != nil {
		row.ToolID = *patch.ToolID
	}
	if patch.ToolName != nil {
		row.ToolName = *patch.ToolName
	}
	if patch.Quantity != nil {
		row.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		row.UnitPrice = *patch.UnitPrice
	}
	if patch.TotalPrice != nil {
		row.TotalPrice = *patch.TotalPrice
	}
	if patch.Address != nil {
		row.Address = *patch.Address
	}
	if patch.Phone != nil {
		row.Phone = *patch.Phone
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	if patch.Paid != nil {
		row.Paid = *patch.Paid
	}
	if patch.TransactionID != nil {
		row.TransactionID = *patch.TransactionID
	}
}

func patchAssignments(patch ports.OrderPatch) map[string]any {
	assignments := make(map[string]any)
	if patch.UserName != nil {
		assignments["user_name"] = *patch.UserName
	}
	if patch.ToolID != nil {
		assignments["tool_id"] = *patch.ToolID
	}
	if patch.ToolName != nil {
		assignments["tool_name"] = *patch.ToolName
	}
	if patch.Quantity != nil {
		assignments["quantity"] = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		assignments["unit_price"] = *patch.UnitPrice
	}
	if patch.TotalPrice != nil {
		assignments["total_price"] = *patch.TotalPrice
	}
	if patch.Address != nil {
		assignments["address"] = *patch.Address
	}
	if patch.Phone != nil {
		assignments["phone"] = *patch.Phone
	}
	if patch.Status != nil {
		assignments["status"] = *patch.Status
	}
	if patch.Paid != nil {
		assignments["paid"] = *patch.Paid
	}
	if patch.TransactionID != nil {
		assignments["transaction_id"] = *patch.TransactionID
	}
	return assignments
}

var _ ports.Repository = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
