package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         = "Tweetr"
	jwtExpirationTime = time.Hour * 24
)

// ConfigureJWT 由启动流程注入密钥与有效期
func ConfigureJWT(secret string, expireHours int) {
	if secret != "" {
		jwtSecret = secret
	}
	if expireHours > 0 {
		jwtExpirationTime = time.Duration(expireHours) * time.Hour
	}
}

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}
