package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/timeline-service/internal/api/middleware"
	"github.com/d60-Lab/timeline-service/pkg/response"
)

// Follow 关注作者
// @Summary 关注
// @Tags 关系链
// @Param username path string true "作者用户名"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/follow/{username} [post]
func (h *Handler) Follow(c *gin.Context) {
	if err := h.engageSvc.Follow(c.Request.Context(), middleware.CurrentUserID(c), c.Param("username")); err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow 取消关注（不存在的边是 no-op）
// @Summary 取消关注
// @Tags 关系链
// @Param username path string true "作者用户名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/unfollow/{username} [post]
func (h *Handler) Unfollow(c *gin.Context) {
	if err := h.engageSvc.Unfollow(c.Request.Context(), middleware.CurrentUserID(c), c.Param("username")); err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, nil)
}

// Like 点赞（幂等）
// @Summary 点赞
// @Tags 关系链
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/like/{post_id} [post]
func (h *Handler) Like(c *gin.Context) {
	postID, ok := uintParam(c, "post_id")
	if !ok {
		return
	}
	if err := h.engageSvc.Like(c.Request.Context(), middleware.CurrentUserID(c), postID); err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, nil)
}

// Unlike 取消点赞（幂等）
// @Summary 取消点赞
// @Tags 关系链
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/unlike/{post_id} [post]
func (h *Handler) Unlike(c *gin.Context) {
	postID, ok := uintParam(c, "post_id")
	if !ok {
		return
	}
	if err := h.engageSvc.Unlike(c.Request.Context(), middleware.CurrentUserID(c), postID); err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, nil)
}
