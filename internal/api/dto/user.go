package dto

import "time"

// UserDTO 用户公开信息，永远不携带密码
type UserDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	WebsiteURL *string   `json:"website_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SignupDTO 注册
type SignupDTO struct {
	Name     string `json:"name" binding:"required" validate:"min=4,max=100"`
	Username string `json:"username" binding:"required" validate:"min=1,max=50"`
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=4,max=72"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileDTO 更新个人资料
type UpdateProfileDTO struct {
	Name       string  `json:"name" binding:"required" validate:"min=4,max=100"`
	Username   string  `json:"username" binding:"required" validate:"min=4,max=50"`
	Email      string  `json:"email" binding:"required" validate:"email"`
	Location   *string `json:"location,omitempty" validate:"omitempty,max=100"`
	Bio        *string `json:"bio,omitempty" validate:"omitempty,max=200"`
	WebsiteURL *string `json:"website_url,omitempty" validate:"omitempty,max=255"`
}

// ChangePasswordDTO 修改密码
type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required" validate:"min=4,max=72"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=4,max=72"`
}

// FollowDTO 关注请求
type FollowDTO struct {
	UserID uint64 `json:"user_id" binding:"required"`
}
