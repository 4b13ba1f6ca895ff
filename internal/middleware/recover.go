package middleware

import (
	"github.com/gin-gonic/gin"

	"mkt-merchant-api/internal/constant"
)

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(500, gin.H{"code": constant.CodeSystemError, "msg": "internal error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
