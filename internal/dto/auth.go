package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email      string `json:"email"      binding:"required,email"`
	Senha      string `json:"senha"      binding:"required,min=8"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	Usuario      UsuarioResponse `json:"usuario"`
}

// UsuarioResponse 用户信息响应
type UsuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}
