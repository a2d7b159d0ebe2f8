package ports

import (
	"context"
	"time"
)

const (
	StatusPending = "pending"
	StatusShipped = "shipped"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Order struct {
	OrderID       string
	UserEmail     string
	UserName      string
	ToolID        string
	ToolName      string
	Quantity      int
	UnitPrice     float64
	TotalPrice    float64
	Address       string
	Phone         string
	Status        string
	Paid          bool
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderPatch carries the fields of a merge-style upsert. Nil fields are left
// untouched on an existing order.
type OrderPatch struct {
	UserName      *string
	ToolID        *string
	ToolName      *string
	Quantity      *int
	UnitPrice     *float64
	TotalPrice    *float64
	Address       *string
	Phone         *string
	Status        *string
	Paid          *bool
	TransactionID *string
}

type UpsertResult struct {
	Order   Order
	Created bool
}

// DeleteResult reports the effect of a delete. Deleting an absent order id is
// a success with Deleted=false, never an error.
type DeleteResult struct {
	OrderID string
	Deleted bool
}

type Repository interface {
	Create(ctx context.Context, order Order, now time.Time) (Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	ListByEmail(ctx context.Context, email string) ([]Order, error)
	ListByEmailAndPaid(ctx context.Context, email string, paid bool) ([]Order, error)
	Upsert(ctx context.Context, orderID string, ownerEmail string, patch OrderPatch, now time.Time) (UpsertResult, error)
	MarkPaid(ctx context.Context, orderID string, transactionID string, now time.Time) (Order, error)
	Delete(ctx context.Context, orderID string) (DeleteResult, error)
}
