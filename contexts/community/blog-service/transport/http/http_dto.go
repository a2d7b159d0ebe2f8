package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PostDTO struct {
	PostID      string `json:"post_id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	PublishedAt string `json:"published_at"`
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

type CreatePostResponse struct {
	Status string  `json:"status"`
	Data   PostDTO `json:"data"`
}

type GetPostResponse struct {
	Status string  `json:"status"`
	Data   PostDTO `json:"data"`
}

type PostListResponse struct {
	Status string    `json:"status"`
	Data   []PostDTO `json:"data"`
}
