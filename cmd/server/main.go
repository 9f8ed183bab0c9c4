package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/timeline-service/config"
	"github.com/d60-Lab/timeline-service/internal/api"
	"github.com/d60-Lab/timeline-service/internal/api/handler"
	timelinecache "github.com/d60-Lab/timeline-service/internal/cache"
	"github.com/d60-Lab/timeline-service/internal/repository"
	"github.com/d60-Lab/timeline-service/internal/service"
	rediscache "github.com/d60-Lab/timeline-service/pkg/cache"
	"github.com/d60-Lab/timeline-service/pkg/database"
	"github.com/d60-Lab/timeline-service/pkg/logger"
	"github.com/d60-Lab/timeline-service/pkg/tracing"
)

// @title Timeline Service API
// @version 1.0
// @description 时间线组装与互动服务
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Sentry.DSN); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, cfg)
	if err != nil {
		logger.Warn("tracing init failed", zap.Error(err))
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() { _ = shutdownTracing(ctx) }()

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("init db failed", zap.Error(err))
		return
	}

	// Redis 不可用时缓存整体降级为直连组装
	var pageCache *timelinecache.TimelinePageCache
	if client, err := rediscache.InitRedis(cfg); err != nil {
		logger.Warn("redis unavailable, timeline cache disabled", zap.Error(err))
	} else {
		pageCache = timelinecache.NewTimelinePageCache(client, cfg.Timeline.CacheTTL)
	}

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	var invalidator service.Invalidator
	if pageCache != nil {
		invalidator = pageCache
	}

	userSvc := service.NewUserService(userRepo)
	groupSvc := service.NewGroupService(groupRepo)
	postSvc := service.NewPostService(postRepo, groupRepo, userRepo, likeRepo, commentRepo, invalidator)
	engageSvc := service.NewEngagementService(followRepo, likeRepo, userRepo, postRepo)
	timelineSvc := service.NewTimelineService(
		postRepo, followRepo, likeRepo, commentRepo, userRepo, groupRepo,
		pageCache, cfg.Timeline.PageSize,
	)

	h := handler.New(cfg, userSvc, postSvc, groupSvc, engageSvc, timelineSvc, pageCache)
	r := api.NewRouter(cfg, h)

	logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Error("server exited", zap.Error(err))
	}
}
