package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/timeline-service/internal/api/middleware"
	"github.com/d60-Lab/timeline-service/pkg/response"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 注册
// @Summary 注册
// @Tags 认证
// @Accept json
// @Param request body registerRequest true "注册信息"
// @Success 200 {object} response.Response{data=model.User}
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, user)
}

// Login 登录换 token
// @Summary 登录
// @Tags 认证
// @Accept json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.userSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		mapError(c, err)
		return
	}
	token, err := middleware.GenerateToken(h.cfg.JWT.Secret, h.cfg.JWT.Expire, user.ID, user.Username)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": user})
}
