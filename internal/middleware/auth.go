package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"mkt-merchant-api/internal/config"
	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/platform"
)

const (
	CtxAdminID     = "admin_id"
	CtxPermissions = "permissions"
)

// Auth validates the bearer token and resolves the administrator's granted
// permission set into the request context. Unauthorized calls never reach
// the operation body.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(401, gin.H{"code": constant.CodeUnauthorized, "msg": "missing token"})
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.C.Security.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"code": constant.CodeUnauthorized, "msg": "invalid token"})
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(string)
		adminID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || adminID == 0 {
			c.JSON(401, gin.H{"code": constant.CodeUnauthorized, "msg": "invalid token"})
			c.Abort()
			return
		}

		perms, err := platform.NewAdministratorService().PermissionsOf(adminID)
		if err != nil {
			c.JSON(500, gin.H{"code": constant.CodeSystemError, "msg": "permission lookup failed"})
			c.Abort()
			return
		}

		c.Set(CtxAdminID, adminID)
		c.Set(CtxPermissions, perms)
		c.Next()
	}
}

// SignToken issues a bearer token for an administrator id.
func SignToken(adminID uint64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(adminID, 10),
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(config.C.Security.TokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.C.Security.JWTSecret))
}
