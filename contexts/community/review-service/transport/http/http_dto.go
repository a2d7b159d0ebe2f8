package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReviewDTO struct {
	ReviewID  string `json:"review_id"`
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AddReviewRequest struct {
	UserName string `json:"user_name,omitempty"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}

type AddReviewResponse struct {
	Status string    `json:"status"`
	Data   ReviewDTO `json:"data"`
}

type ReviewListResponse struct {
	Status string      `json:"status"`
	Data   []ReviewDTO `json:"data"`
}
