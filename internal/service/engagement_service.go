package service

import (
	"context"

	"github.com/d60-Lab/timeline-service/internal/repository"
)

// EngagementService 关注/点赞；所有操作幂等，
// 目标状态已满足时是 no-op 而不是错误（前端双击安全）
type EngagementService interface {
	Follow(ctx context.Context, followerID uint, authorUsername string) error
	Unfollow(ctx context.Context, followerID uint, authorUsername string) error
	IsFollowing(ctx context.Context, followerID uint, authorUsername string) (bool, error)

	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	LikeCount(ctx context.Context, postID uint) (int64, error)
	IsLikedBy(ctx context.Context, userID, postID uint) (bool, error)
}

type engagementService struct {
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
}

func NewEngagementService(
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
) EngagementService {
	return &engagementService{
		followRepo: followRepo,
		likeRepo:   likeRepo,
		userRepo:   userRepo,
		postRepo:   postRepo,
	}
}

func (s *engagementService) resolveAuthor(ctx context.Context, username string) (uint, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if author == nil {
		return 0, ErrUserNotFound
	}
	return author.ID, nil
}

// resolvePost 点赞目标必须是可见帖子；无效帖等同不存在
func (s *engagementService) resolvePost(ctx context.Context, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return nil
}

func (s *engagementService) Follow(ctx context.Context, followerID uint, authorUsername string) error {
	authorID, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	if followerID == authorID {
		return ErrFollowSelf
	}
	// 重复关注由唯一索引 + DO NOTHING 吸收
	return s.followRepo.Create(ctx, followerID, authorID)
}

func (s *engagementService) Unfollow(ctx context.Context, followerID uint, authorUsername string) error {
	authorID, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return err
	}
	// 不存在的边删除是 no-op
	return s.followRepo.Delete(ctx, followerID, authorID)
}

func (s *engagementService) IsFollowing(ctx context.Context, followerID uint, authorUsername string) (bool, error) {
	authorID, err := s.resolveAuthor(ctx, authorUsername)
	if err != nil {
		return false, err
	}
	return s.followRepo.Exists(ctx, followerID, authorID)
}

func (s *engagementService) Like(ctx context.Context, userID, postID uint) error {
	if err := s.resolvePost(ctx, postID); err != nil {
		return err
	}
	return s.likeRepo.Create(ctx, userID, postID)
}

func (s *engagementService) Unlike(ctx context.Context, userID, postID uint) error {
	if err := s.resolvePost(ctx, postID); err != nil {
		return err
	}
	return s.likeRepo.Delete(ctx, userID, postID)
}

func (s *engagementService) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return s.likeRepo.CountByPost(ctx, postID)
}

func (s *engagementService) IsLikedBy(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, postID)
}
