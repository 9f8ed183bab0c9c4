package api

import (
	"regexp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/timeline-service/config"
	"github.com/d60-Lab/timeline-service/internal/api/handler"
	"github.com/d60-Lab/timeline-service/internal/api/middleware"

	_ "github.com/d60-Lab/timeline-service/docs"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
	}
}

// NewRouter 组装路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidators()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.Server.Rate))
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware("timeline-service"))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	secret := cfg.JWT.Secret
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		// 读路径匿名可访问；带 token 则附带 is_liked / following 标注
		read := v1.Group("", middleware.AuthOptional(secret))
		{
			read.GET("/timeline", h.Timeline)
			read.GET("/timeline/group/:slug", h.GroupTimeline)
			read.GET("/timeline/author/:username", h.AuthorTimeline)
			read.GET("/posts/:username/:post_id", h.GetPost)
			read.GET("/groups/:slug", h.GetGroup)
		}

		write := v1.Group("", middleware.AuthRequired(secret))
		{
			write.POST("/posts", h.CreatePost)
			write.PUT("/posts/:username/:post_id", h.EditPost)
			write.POST("/posts/:username/:post_id/comment", h.AddComment)
			write.POST("/like/:post_id", h.Like)
			write.POST("/unlike/:post_id", h.Unlike)
			write.POST("/relations/follow/:username", h.Follow)
			write.POST("/relations/unfollow/:username", h.Unfollow)
			write.POST("/groups", h.CreateGroup)
		}

		admin := v1.Group("/admin", middleware.AuthRequired(secret))
		{
			admin.POST("/posts/:post_id/hide", h.HidePost)
			admin.POST("/posts/:post_id/unhide", h.UnhidePost)
			admin.POST("/cache/clear", h.ClearCache)
		}
	}

	return r
}
