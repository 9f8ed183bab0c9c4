package service

import (
	"context"
	"encoding/json"

	"github.com/d60-Lab/timeline-service/internal/cache"
	"github.com/d60-Lab/timeline-service/internal/model"
	"github.com/d60-Lab/timeline-service/internal/repository"
)

// TimelineItem 单条帖子 + 本页批量算出的标注
type TimelineItem struct {
	Post         *model.Post `json:"post"`
	LikeCount    int64       `json:"like_count"`
	IsLiked      bool        `json:"is_liked"`
	GroupTitle   *string     `json:"group_title,omitempty"`
	CommentCount int64       `json:"comment_count"`
}

// TimelinePage 一页时间线
type TimelinePage struct {
	Items       []TimelineItem `json:"items"`
	TotalCount  int64          `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	PageSize    int            `json:"page_size"`
	// 作者视图附带：当前请求者是否已关注该作者
	Following *bool `json:"following,omitempty"`
}

// TimelineService 四类视图的组装；可见性过滤统一走 PostRepository，
// 这里不重复 is_valid 判断。requesterID 为 0 表示匿名
type TimelineService interface {
	Global(ctx context.Context, requesterID uint, page int) (*TimelinePage, error)
	Group(ctx context.Context, slug string, requesterID uint, page int) (*TimelinePage, error)
	Author(ctx context.Context, username string, requesterID uint, page int) (*TimelinePage, error)
	Followed(ctx context.Context, requesterID uint, page int) (*TimelinePage, error)
}

type timelineService struct {
	postRepo    repository.PostRepository
	followRepo  repository.FollowRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	pageCache   *cache.TimelinePageCache // 可为 nil（缓存降级/测试）
	pageSize    int
}

func NewTimelineService(
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	pageCache *cache.TimelinePageCache,
	pageSize int,
) TimelineService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &timelineService{
		postRepo:    postRepo,
		followRepo:  followRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		groupRepo:   groupRepo,
		pageCache:   pageCache,
		pageSize:    pageSize,
	}
}

// Global 全站时间线；只有这个端点走 read-through 缓存。
// is_liked 是请求者相关的，所以只缓存匿名请求的页面
func (s *timelineService) Global(ctx context.Context, requesterID uint, page int) (*TimelinePage, error) {
	if page < 1 {
		page = 1
	}
	useCache := s.pageCache != nil && requesterID == 0
	if useCache {
		if data, ok := s.pageCache.GetGlobal(ctx, page); ok {
			var cached TimelinePage
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	result, err := s.compose(ctx, repository.PostFilter{}, requesterID, page)
	if err != nil {
		return nil, err
	}

	if useCache {
		if payload, err := json.Marshal(result); err == nil {
			s.pageCache.SetGlobal(ctx, page, payload)
		}
	}
	return result, nil
}

func (s *timelineService) Group(ctx context.Context, slug string, requesterID uint, page int) (*TimelinePage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return s.compose(ctx, repository.PostFilter{GroupID: &group.ID}, requesterID, page)
}

func (s *timelineService) Author(ctx context.Context, username string, requesterID uint, page int) (*TimelinePage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	result, err := s.compose(ctx, repository.PostFilter{AuthorID: &author.ID}, requesterID, page)
	if err != nil {
		return nil, err
	}
	if requesterID != 0 {
		following, err := s.followRepo.Exists(ctx, requesterID, author.ID)
		if err != nil {
			return nil, err
		}
		result.Following = &following
	}
	return result, nil
}

// Followed 关注流：被关注作者发帖的并集；没关注任何人返回合法空页
func (s *timelineService) Followed(ctx context.Context, requesterID uint, page int) (*TimelinePage, error) {
	authorIDs, err := s.followRepo.ListAuthorIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if len(authorIDs) == 0 {
		return &TimelinePage{
			Items:       []TimelineItem{},
			TotalCount:  0,
			CurrentPage: page,
			PageSize:    s.pageSize,
		}, nil
	}
	return s.compose(ctx, repository.PostFilter{AuthorIDs: authorIDs}, requesterID, page)
}

// compose 取一页候选集并批量标注。
// 标注查询按页批量（IN / GROUP BY），不允许逐帖回表
func (s *timelineService) compose(ctx context.Context, filter repository.PostFilter, requesterID uint, page int) (*TimelinePage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.pageSize
	posts, total, err := s.postRepo.List(ctx, filter, offset, s.pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	likeCounts, err := s.likeRepo.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.commentRepo.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked := map[uint]bool{}
	if requesterID != 0 {
		liked, err = s.likeRepo.LikedSet(ctx, requesterID, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]TimelineItem, len(posts))
	for i, p := range posts {
		var groupTitle *string
		if p.Group != nil {
			groupTitle = &p.Group.Title
		}
		items[i] = TimelineItem{
			Post:         p,
			LikeCount:    likeCounts[p.ID],
			IsLiked:      liked[p.ID],
			GroupTitle:   groupTitle,
			CommentCount: commentCounts[p.ID],
		}
	}

	return &TimelinePage{
		Items:       items,
		TotalCount:  total,
		CurrentPage: page,
		PageSize:    s.pageSize,
	}, nil
}
