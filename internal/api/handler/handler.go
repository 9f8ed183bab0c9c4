package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/timeline-service/config"
	"github.com/d60-Lab/timeline-service/internal/cache"
	"github.com/d60-Lab/timeline-service/internal/service"
	"github.com/d60-Lab/timeline-service/pkg/logger"
	"github.com/d60-Lab/timeline-service/pkg/response"
)

// Handler 聚合全部 HTTP 入口
type Handler struct {
	cfg         *config.Config
	userSvc     service.UserService
	postSvc     service.PostService
	groupSvc    service.GroupService
	engageSvc   service.EngagementService
	timelineSvc service.TimelineService
	pageCache   *cache.TimelinePageCache
}

func New(
	cfg *config.Config,
	userSvc service.UserService,
	postSvc service.PostService,
	groupSvc service.GroupService,
	engageSvc service.EngagementService,
	timelineSvc service.TimelineService,
	pageCache *cache.TimelinePageCache,
) *Handler {
	return &Handler{
		cfg:         cfg,
		userSvc:     userSvc,
		postSvc:     postSvc,
		groupSvc:    groupSvc,
		engageSvc:   engageSvc,
		timelineSvc: timelineSvc,
		pageCache:   pageCache,
	}
}

// mapError 服务层错误 -> HTTP 状态
func mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("internal error", zap.Error(err), zap.String("path", c.FullPath()))
		response.InternalError(c, err)
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
