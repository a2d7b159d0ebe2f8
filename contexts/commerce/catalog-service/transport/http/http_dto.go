package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ToolDTO struct {
	ToolID       string  `json:"tool_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	UnitPrice    float64 `json:"unit_price"`
	MinOrderQty  int     `json:"min_order_qty"`
	AvailableQty int     `json:"available_qty"`
	CreatedAt    string  `json:"created_at"`
}

type CreateToolRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	UnitPrice    float64 `json:"unit_price"`
	MinOrderQty  int     `json:"min_order_qty"`
	AvailableQty int     `json:"available_qty"`
}

type CreateToolResponse struct {
	Status string  `json:"status"`
	Data   ToolDTO `json:"data"`
}

type ToolListResponse struct {
	Status string    `json:"status"`
	Data   []ToolDTO `json:"data"`
}

type GetToolResponse struct {
	Status string  `json:"status"`
	Data   ToolDTO `json:"data"`
}

type DeleteToolResponse struct {
	Status string `json:"status"`
	Data   struct {
		ToolID  string `json:"tool_id"`
		Deleted bool   `json:"deleted"`
	} `json:"data"`
}
