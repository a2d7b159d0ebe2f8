package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GrantRoleRequest struct {
	RoleID string `json:"role_id"`
}

type GrantRoleResponse struct {
	Status string `json:"status"`
	Data   struct {
		Email     string `json:"email"`
		RoleID    string `json:"role_id"`
		GrantedBy string `json:"granted_by"`
		GrantedAt string `json:"granted_at"`
	} `json:"data"`
}

type RevokeRoleRequest struct {
	RoleID string `json:"role_id"`
}

type RevokeRoleResponse struct {
	Status string `json:"status"`
	Data   struct {
		Email   string `json:"email"`
		RoleID  string `json:"role_id"`
		Revoked bool   `json:"revoked"`
	} `json:"data"`
}

type ListRolesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	} `json:"data"`
}

type AdminCheckResponse struct {
	Status string `json:"status"`
	Data   struct {
		Email string `json:"email"`
		Admin bool   `json:"admin"`
	} `json:"data"`
}
