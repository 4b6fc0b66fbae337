package api

// LoginRequest запрос аутентификации агента
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse представляет выданные сервером токены
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ErrorResponse представляет ошибку сервера
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
