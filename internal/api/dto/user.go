package dto

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=30"`
	Email    string `json:"email" binding:"required" validate:"email,max=255"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
}

// LoginDTO 登录凭证
type LoginDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
}

// LoginResultDTO 登录成功返回 token 与用户信息
type LoginResultDTO struct {
	Token string         `json:"token"`
	User  *PublicUserDTO `json:"user"`
}

// PublicUserDTO 用户公开信息，所有对外列表/嵌套场景共用
type PublicUserDTO struct {
	ID            uint64  `json:"id"`
	Username      string  `json:"username"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// SearchUsersDTO 搜索用户
type SearchUsersDTO struct {
	Query string `form:"q" binding:"required" validate:"min=1,max=64"`
}
