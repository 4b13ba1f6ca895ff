package middleware

import (
	"github.com/gin-gonic/gin"

	"mkt-merchant-api/internal/constant"
)

// Allow gates an operation on the caller's granted permissions: the request
// proceeds when the granted and required sets intersect, or the caller holds
// SuperAdmin. Must run after Auth.
func Allow(required ...constant.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(CtxPermissions)
		if !ok {
			c.JSON(403, gin.H{"code": constant.CodeForbidden, "msg": "permission denied"})
			c.Abort()
			return
		}
		granted, _ := val.([]constant.Permission)
		if !HasAny(granted, required) {
			c.JSON(403, gin.H{"code": constant.CodeForbidden, "msg": "permission denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// HasAny reports whether granted intersects required or contains SuperAdmin.
func HasAny(granted, required []constant.Permission) bool {
	set := make(map[constant.Permission]bool, len(granted))
	for _, p := range granted {
		if p == constant.SuperAdmin {
			return true
		}
		set[p] = true
	}
	for _, p := range required {
		if set[p] {
			return true
		}
	}
	return false
}
