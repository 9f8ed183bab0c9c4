package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/timeline-service/internal/api/middleware"
	"github.com/d60-Lab/timeline-service/pkg/response"
)

type createPostRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug"`
	Image     string `json:"image"`
}

type editPostRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreatePost 发帖
// @Summary 发帖
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 200 {object} response.Response{data=model.Post}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.postSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), req.Text, req.GroupSlug, req.Image)
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, post)
}

// GetPost 帖子详情（含作者总帖数、点赞数、评论）
// @Summary 帖子详情
// @Tags 帖子
// @Param username path string true "作者用户名"
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response{data=service.PostDetail}
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{username}/{post_id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	postID, ok := uintParam(c, "post_id")
	if !ok {
		return
	}
	detail, err := h.postSvc.Get(c.Request.Context(), c.Param("username"), postID)
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, detail)
}

// EditPost 编辑帖子（仅作者）
// @Summary 编辑帖子
// @Tags 帖子
// @Accept json
// @Param username path string true "作者用户名"
// @Param post_id path int true "帖子ID"
// @Param request body editPostRequest true "新内容"
// @Success 200 {object} response.Response{data=model.Post}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{username}/{post_id} [put]
func (h *Handler) EditPost(c *gin.Context) {
	postID, ok := uintParam(c, "post_id")
	if !ok {
		return
	}
	var req editPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.postSvc.Edit(c.Request.Context(), middleware.CurrentUserID(c), c.Param("username"), postID, req.Text, req.GroupSlug)
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, post)
}

// AddComment 评论
// @Summary 评论
// @Tags 帖子
// @Accept json
// @Param username path string true "作者用户名"
// @Param post_id path int true "帖子ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Response{data=model.Comment}
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{username}/{post_id}/comment [post]
func (h *Handler) AddComment(c *gin.Context) {
	postID, ok := uintParam(c, "post_id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.postSvc.AddComment(c.Request.Context(), middleware.CurrentUserID(c), c.Param("username"), postID, req.Text)
	if err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, comment)
}

// HidePost 审核下架（软删除）
// @Summary 下架帖子
// @Tags 管理
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/posts/{post_id}/hide [post]
func (h *Handler) HidePost(c *gin.Context) {
	postID, ok := uintParam(c, "post_id")
	if !ok {
		return
	}
	if err := h.postSvc.SetValid(c.Request.Context(), postID, false); err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, nil)
}

// UnhidePost 审核恢复
// @Summary 恢复帖子
// @Tags 管理
// @Param post_id path int true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/posts/{post_id}/unhide [post]
func (h *Handler) UnhidePost(c *gin.Context) {
	postID, ok := uintParam(c, "post_id")
	if !ok {
		return
	}
	if err := h.postSvc.SetValid(c.Request.Context(), postID, true); err != nil {
		mapError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCache 手动清空时间线缓存命名空间
// @Summary 清缓存
// @Tags 管理
// @Success 200 {object} response.Response
// @Router /api/v1/admin/cache/clear [post]
func (h *Handler) ClearCache(c *gin.Context) {
	if h.pageCache != nil {
		h.pageCache.Invalidate(c.Request.Context())
	}
	response.Success(c, nil)
}
