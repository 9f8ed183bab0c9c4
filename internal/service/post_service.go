package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/d60-Lab/timeline-service/internal/model"
	"github.com/d60-Lab/timeline-service/internal/repository"
)

// Invalidator 帖子发生任何变更（新建/编辑/审核翻转）后清掉整个时间线缓存命名空间
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// PostDetail 帖子详情页数据（原样带出作者总帖数与评论）
type PostDetail struct {
	Post            *model.Post      `json:"post"`
	AuthorPostCount int64            `json:"author_post_count"`
	LikeCount       int64            `json:"like_count"`
	Comments        []*model.Comment `json:"comments"`
}

// PostService 帖子写路径与详情读路径
type PostService interface {
	Create(ctx context.Context, authorID uint, text, groupSlug, image string) (*model.Post, error)
	// Get 按 作者用户名 + 帖子ID 取详情；无效帖等同不存在
	Get(ctx context.Context, username string, postID uint) (*PostDetail, error)
	// Edit 仅作者可编辑；created_at 不变，时间线位置保持
	Edit(ctx context.Context, requesterID uint, username string, postID uint, text, groupSlug string) (*model.Post, error)
	// SetValid 审核翻转（软删除/恢复）
	SetValid(ctx context.Context, postID uint, valid bool) error
	AddComment(ctx context.Context, requesterID uint, username string, postID uint, text string) (*model.Comment, error)
}

type postService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	invalidator Invalidator
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	invalidator Invalidator,
) PostService {
	return &postService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		invalidator: invalidator,
	}
}

func validatePostText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(text) > model.MaxPostTextLen {
		return ErrTextTooLong
	}
	return nil
}

// resolveGroup slug 为空返回 nil；未知 slug 返回 ErrGroupNotFound
func (s *postService) resolveGroup(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	g, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return &g.ID, nil
}

func (s *postService) Create(ctx context.Context, authorID uint, text, groupSlug, image string) (*model.Post, error) {
	if err := validatePostText(text); err != nil {
		return nil, err
	}
	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}
	post := &model.Post{AuthorID: authorID, Text: text, GroupID: groupID, Image: image, IsValid: true}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, username string, postID uint) (*PostDetail, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	post, err := s.postRepo.GetByAuthorAndID(ctx, author.ID, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	count, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.CountByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: post, AuthorPostCount: count, LikeCount: likes, Comments: comments}, nil
}

func (s *postService) Edit(ctx context.Context, requesterID uint, username string, postID uint, text, groupSlug string) (*model.Post, error) {
	if err := validatePostText(text); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	post, err := s.postRepo.GetByAuthorAndID(ctx, author.ID, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != requesterID {
		return nil, ErrNotAuthor
	}
	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}
	post.Text = text
	post.GroupID = groupID
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
	return post, nil
}

func (s *postService) SetValid(ctx context.Context, postID uint, valid bool) error {
	if err := s.postRepo.SetValid(ctx, postID, valid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
	return nil
}

func (s *postService) AddComment(ctx context.Context, requesterID uint, username string, postID uint, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	post, err := s.postRepo.GetByAuthorAndID(ctx, author.ID, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	comment := &model.Comment{PostID: post.ID, AuthorID: requesterID, Text: text}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
