package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/timeline-service/internal/api/middleware"
	"github.com/d60-Lab/timeline-service/pkg/response"
)

// Timeline 时间线入口（global / followed）
// @Summary 时间线
// @Tags 时间线
// @Param view query string false "视图" Enums(global, followed) default(global)
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=service.TimelinePage}
// @Failure 401 {object} response.Response
// @Router /api/v1/timeline [get]
func (h *Handler) Timeline(c *gin.Context) {
	requester := middleware.CurrentUserID(c)
	page := pageParam(c)

	switch c.DefaultQuery("view", "global") {
	case "followed":
		if requester == 0 {
			response.Unauthorized(c, "login required for followed feed")
			return
		}
		result, err := h.timelineSvc.Followed(c.Request.Context(), requester, page)
		if err != nil {
			mapError(c, err)
			return
		}
		response.Success(c, result)
	case "global":
		result, err := h.timelineSvc.Global(c.Request.Context(), requester, page)
		if err != nil {
			mapError(c, err)
			return
		}
		response.Success(c, result)
	default:
		response.BadRequest(c, "unknown view")
	}
}

// GroupTimeline 按组时间线
// @Summary 组时间线
// @Tags 时间线
// @Param slug path string true "组 slug"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=service.TimelinePage}
// @Failure 404 {object} response.Response
// @Router /api/v1/timeline/group/{slug} [get]
func (h *Handler) GroupTimeline(c *gin.Context) {
	result, err := h.timelineSvc.Group(c.Request.Context(), c.Param("slug"), middleware.CurrentUserID(c), pageParam(c))
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, result)
}

// AuthorTimeline 作者主页时间线
// @Summary 作者时间线
// @Tags 时间线
// @Param username path string true "作者用户名"
// @Param page query int false "页码" default(1)
// @Success 200 {object} response.Response{data=service.TimelinePage}
// @Failure 404 {object} response.Response
// @Router /api/v1/timeline/author/{username} [get]
func (h *Handler) AuthorTimeline(c *gin.Context) {
	result, err := h.timelineSvc.Author(c.Request.Context(), c.Param("username"), middleware.CurrentUserID(c), pageParam(c))
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, result)
}
