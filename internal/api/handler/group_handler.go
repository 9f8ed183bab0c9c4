package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/timeline-service/pkg/response"
)

type createGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Description string `json:"description"`
}

// CreateGroup 建组（slug 全局唯一）
// @Summary 建组
// @Tags 分组
// @Accept json
// @Param request body createGroupRequest true "组信息"
// @Success 200 {object} response.Response{data=model.Group}
// @Failure 400 {object} response.Response
// @Router /api/v1/groups [post]
func (h *Handler) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	group, err := h.groupSvc.Create(c.Request.Context(), req.Title, req.Slug, req.Description)
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, group)
}

// GetGroup 组信息
// @Summary 组信息
// @Tags 分组
// @Param slug path string true "组 slug"
// @Success 200 {object} response.Response{data=model.Group}
// @Failure 404 {object} response.Response
// @Router /api/v1/groups/{slug} [get]
func (h *Handler) GetGroup(c *gin.Context) {
	group, err := h.groupSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, group)
}
