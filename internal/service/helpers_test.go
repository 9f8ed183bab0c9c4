package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/timeline-service/internal/cache"
	"github.com/d60-Lab/timeline-service/internal/model"
	"github.com/d60-Lab/timeline-service/internal/repository"
)

// 测试夹具：内存 sqlite + 全套 repo/service
type fixture struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	postRepo    repository.PostRepository
	followRepo  repository.FollowRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository

	users    UserService
	groups   GroupService
	posts    PostService
	engage   EngagementService
	timeline TimelineService
}

func newFixture(t *testing.T, pageCache *cache.TimelinePageCache, pageSize int) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{},
		&model.Follow{}, &model.Like{}, &model.Comment{},
	))

	f := &fixture{
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		groupRepo:   repository.NewGroupRepository(db),
		postRepo:    repository.NewPostRepository(db),
		followRepo:  repository.NewFollowRepository(db),
		likeRepo:    repository.NewLikeRepository(db),
		commentRepo: repository.NewCommentRepository(db),
	}

	var invalidator Invalidator
	if pageCache != nil {
		invalidator = pageCache
	}

	f.users = NewUserService(f.userRepo)
	f.groups = NewGroupService(f.groupRepo)
	f.posts = NewPostService(f.postRepo, f.groupRepo, f.userRepo, f.likeRepo, f.commentRepo, invalidator)
	f.engage = NewEngagementService(f.followRepo, f.likeRepo, f.userRepo, f.postRepo)
	f.timeline = NewTimelineService(
		f.postRepo, f.followRepo, f.likeRepo, f.commentRepo, f.userRepo, f.groupRepo,
		pageCache, pageSize,
	)
	return f
}

func (f *fixture) user(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), username, username+"@example.com", "secret123")
	require.NoError(t, err)
	return u
}

func (f *fixture) post(t *testing.T, authorID uint, text string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{AuthorID: authorID, Text: text, IsValid: true, CreatedAt: at}
	require.NoError(t, f.db.Create(p).Error)
	return p
}
