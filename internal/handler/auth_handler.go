package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mkt-merchant-api/internal/constant"
	"mkt-merchant-api/internal/dto"
	"mkt-merchant-api/internal/middleware"
	"mkt-merchant-api/internal/platform"
)

type AuthHandler struct{ admins *platform.AdministratorService }

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{admins: platform.NewAdministratorService()}
}

// Login authenticates an administrator (platform operator or onboarded
// merchant admin) and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": constant.CodeBadRequest, "msg": err.Error()})
		return
	}
	admin, err := h.admins.FindByEmail(req.Email)
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeDatabaseError, "msg": err.Error()})
		return
	}
	if admin == nil || !h.admins.CheckPassword(admin, req.Password) {
		c.JSON(401, gin.H{"code": constant.CodeLoginFailed, "msg": "invalid email or password"})
		return
	}
	token, err := middleware.SignToken(admin.ID)
	if err != nil {
		c.JSON(500, gin.H{"code": constant.CodeSystemError, "msg": "token signing failed"})
		return
	}
	c.JSON(200, gin.H{"code": constant.CodeSuccess, "data": dto.LoginResp{
		Token:     token,
		AdminID:   strconv.FormatUint(admin.ID, 10),
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
	}})
}
