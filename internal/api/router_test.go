package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/timeline-service/config"
	"github.com/d60-Lab/timeline-service/internal/api/handler"
	"github.com/d60-Lab/timeline-service/internal/api/middleware"
	"github.com/d60-Lab/timeline-service/internal/model"
	"github.com/d60-Lab/timeline-service/internal/repository"
	"github.com/d60-Lab/timeline-service/internal/service"
)

type testApp struct {
	router http.Handler
	cfg    *config.Config
	db     *gorm.DB
	users  service.UserService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{},
		&model.Follow{}, &model.Like{}, &model.Comment{},
	))

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expire = time.Hour
	cfg.Timeline.PageSize = 10

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	userSvc := service.NewUserService(userRepo)
	groupSvc := service.NewGroupService(groupRepo)
	postSvc := service.NewPostService(postRepo, groupRepo, userRepo, likeRepo, commentRepo, nil)
	engageSvc := service.NewEngagementService(followRepo, likeRepo, userRepo, postRepo)
	timelineSvc := service.NewTimelineService(
		postRepo, followRepo, likeRepo, commentRepo, userRepo, groupRepo, nil, cfg.Timeline.PageSize,
	)

	h := handler.New(cfg, userSvc, postSvc, groupSvc, engageSvc, timelineSvc, nil)
	return &testApp{router: NewRouter(cfg, h), cfg: cfg, db: db, users: userSvc}
}

func (a *testApp) token(t *testing.T, username string) string {
	t.Helper()
	u, err := a.users.Register(context.Background(), username, username+"@example.com", "secret123")
	require.NoError(t, err)
	token, err := middleware.GenerateToken(a.cfg.JWT.Secret, a.cfg.JWT.Expire, u.ID, u.Username)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestRouter_TimelineAnonymous(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/timeline", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// followed 视图必须登录
	w = app.do(t, http.MethodGet, "/api/v1/timeline?view=followed", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/timeline?view=bogus", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UnknownSlugAndUsernameAre404(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/api/v1/timeline/group/no-such", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/timeline/author/nobody", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_PostLifecycle(t *testing.T) {
	app := newTestApp(t)
	alice := app.token(t, "alice")
	bob := app.token(t, "bob")

	// 未登录不能发帖
	w := app.do(t, http.MethodPost, "/api/v1/posts", "", map[string]string{"text": "hi"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/posts", alice, map[string]string{"text": "hello world"})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data model.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	postID := created.Data.ID
	require.NotZero(t, postID)

	// 非作者编辑 403
	w = app.do(t, http.MethodPut, "/api/v1/posts/alice/1", bob, map[string]string{"text": "hijack"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// 点赞幂等，两次都 200
	w = app.do(t, http.MethodPost, "/api/v1/like/1", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.do(t, http.MethodPost, "/api/v1/like/1", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 不存在的帖子 404
	w = app.do(t, http.MethodPost, "/api/v1/like/999", bob, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/posts/alice/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_FollowRules(t *testing.T) {
	app := newTestApp(t)
	alice := app.token(t, "alice")
	_ = app.token(t, "bob")

	// 自关注 400
	w := app.do(t, http.MethodPost, "/api/v1/relations/follow/alice", alice, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/relations/follow/bob", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 未知作者 404
	w = app.do(t, http.MethodPost, "/api/v1/relations/follow/ghost", alice, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/relations/unfollow/bob", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_GroupValidation(t *testing.T) {
	app := newTestApp(t)
	alice := app.token(t, "alice")

	w := app.do(t, http.MethodPost, "/api/v1/groups", alice, map[string]string{"title": "Go", "slug": "go-news"})
	require.Equal(t, http.StatusOK, w.Code)

	// slug 校验器拦住非法 slug
	w = app.do(t, http.MethodPost, "/api/v1/groups", alice, map[string]string{"title": "Bad", "slug": "Not A Slug"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// slug 冲突
	w = app.do(t, http.MethodPost, "/api/v1/groups", alice, map[string]string{"title": "Dup", "slug": "go-news"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ModerationHidesPost(t *testing.T) {
	app := newTestApp(t)
	alice := app.token(t, "alice")

	w := app.do(t, http.MethodPost, "/api/v1/posts", alice, map[string]string{"text": "visible"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/admin/posts/1/hide", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/posts/alice/1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/admin/posts/1/unhide", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/api/v1/posts/alice/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AuthFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "alice", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	w = app.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
