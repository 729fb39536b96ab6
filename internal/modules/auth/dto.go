package auth

// SignUpDTO is the signup request body.
type SignUpDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

// SignInDTO is the signin request body.
type SignInDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateNicknameDTO is the nickname change request body.
type UpdateNicknameDTO struct {
	Nickname string `json:"nickname" binding:"required"`
}
