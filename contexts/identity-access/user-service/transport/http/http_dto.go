package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UserDTO struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Education string `json:"education,omitempty"`
	Location  string `json:"location,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

type UpsertUserRequest struct {
	Name      string `json:"name,omitempty"`
	Education string `json:"education,omitempty"`
	Location  string `json:"location,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type UpsertUserResponse struct {
	Status string `json:"status"`
	Data   struct {
		User        UserDTO `json:"user"`
		AccessToken string  `json:"access_token,omitempty"`
	} `json:"data"`
}

type GetUserResponse struct {
	Status string  `json:"status"`
	Data   UserDTO `json:"data"`
}

type UserListResponse struct {
	Status string    `json:"status"`
	Data   []UserDTO `json:"data"`
}
