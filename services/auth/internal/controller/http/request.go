package http

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,notblank,max=150"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"omitempty,max=150"`
	LastName  string `json:"last_name" binding:"omitempty,max=150"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateMeRequest leaves absent fields unchanged.
type UpdateMeRequest struct {
	Username  *string `json:"username" binding:"omitempty,notblank,max=150"`
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
}

type LinkProviderRequest struct {
	Provider       string  `json:"provider" binding:"required,oneof=discord google github"`
	ProviderUserID string  `json:"provider_user_id" binding:"required,notblank,max=255"`
	Username       *string `json:"username" binding:"omitempty,max=255"`
}
