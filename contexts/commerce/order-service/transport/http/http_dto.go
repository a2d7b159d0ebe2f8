package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OrderDTO struct {
	OrderID       string  `json:"order_id"`
	UserEmail     string  `json:"user_email"`
	UserName      string  `json:"user_name,omitempty"`
	ToolID        string  `json:"tool_id"`
	ToolName      string  `json:"tool_name,omitempty"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
	Address       string  `json:"address,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Status        string  `json:"status"`
	Paid          bool    `json:"paid"`
	TransactionID string  `json:"transaction_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type CreateOrderRequest struct {
	UserEmail string  `json:"user_email"`
	UserName  string  `json:"user_name,omitempty"`
	ToolID    string  `json:"tool_id"`
	ToolName  string  `json:"tool_name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Address   string  `json:"address,omitempty"`
	Phone     string  `json:"phone,omitempty"`
}

type CreateOrderResponse struct {
	Status string   `json:"status"`
	Data   OrderDTO `json:"data"`
}

type OrderListResponse struct {
	Status string     `json:"status"`
	Data   []OrderDTO `json:"data"`
}

type UpsertOrderRequest struct {
	UserName      *string  `json:"user_name,omitempty"`
	ToolID        *string  `json:"tool_id,omitempty"`
	ToolName      *string  `json:"tool_name,omitempty"`
	Quantity      *int     `json:"quantity,omitempty"`
	UnitPrice     *float64 `json:"unit_price,omitempty"`
	TotalPrice    *float64 `json:"total_price,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Paid          *bool    `json:"paid,omitempty"`
	TransactionID *string  `json:"transaction_id,omitempty"`
}

type UpsertOrderResponse struct {
	Status string `json:"status"`
	Data   struct {
		Order   OrderDTO `json:"order"`
		Created bool     `json:"created"`
	} `json:"data"`
}

type PayOrderRequest struct {
	TransactionID string `json:"transaction_id"`
}

type PayOrderResponse struct {
	Status string   `json:"status"`
	Data   OrderDTO `json:"data"`
}

type DeleteOrderResponse struct {
	Status string `json:"status"`
	Data   struct {
		OrderID string `json:"order_id"`
		Deleted bool   `json:"deleted"`
	} `json:"data"`
}
