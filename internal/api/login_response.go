package api

// swagger:model api.AdminResponse
type AdminResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@example.com"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message string        `json:"message" example:"login successful"`
	Token   string        `json:"token" example:"eyJhbGciOi..."`
	Admin   AdminResponse `json:"admin"`
}
