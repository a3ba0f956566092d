package transport

type CreateUserRequest struct {
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	Name        string `json:"name" form:"name"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
	IsSuperuser *bool  `json:"is_superuser" form:"is_superuser"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateBrandRequest struct {
	Name        string `json:"name" form:"name"`
	About       string `json:"about" form:"about"`
	SocialMedia string `json:"social_media" form:"social_media"`
	Website     string `json:"website" form:"website"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
}

type UpdateBrandRequest struct {
	About       *string `json:"about"`
	SocialMedia *string `json:"social_media"`
	Website     *string `json:"website"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	IsActive    *bool   `json:"is_active"`
}

type CreateProductRequest struct {
	Title        string  `json:"title" form:"title"`
	Description  string  `json:"description" form:"description"`
	DiscountRate float64 `json:"discount_rate" form:"discount_rate"`
}

type UpdateProductRequest struct {
	Description  *string  `json:"description"`
	DiscountRate *float64 `json:"discount_rate"`
}

type Message struct {
	Message string `json:"message"`
}
