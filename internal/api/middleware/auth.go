package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/timeline-service/pkg/response"
)

const identityKey = "user_id"

// Claims JWT 负载
type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken 签发 HS256 token
func GenerateToken(secret string, expire time.Duration, userID uint, username string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// AuthRequired 强制登录；未带合法 token 返回 401
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			response.Unauthorized(c, "missing token")
			c.Abort()
			return
		}
		claims, err := parseToken(secret, tokenStr)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		c.Set(identityKey, claims.UserID)
		c.Next()
	}
}

// AuthOptional 匿名可访问；带了合法 token 就记录身份
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := bearerToken(c); tokenStr != "" {
			if claims, err := parseToken(secret, tokenStr); err == nil {
				c.Set(identityKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// CurrentUserID 从上下文取请求者；0 表示匿名
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
