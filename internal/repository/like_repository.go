package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/timeline-service/internal/model"
)

type LikeRepository interface {
	Create(ctx context.Context, userID, postID uint) error
	Delete(ctx context.Context, userID, postID uint) error
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	// CountByPostIDs 一次查询拿一页帖子的点赞数（GROUP BY）
	CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	// LikedSet 一次查询拿 user 在这页里赞过哪些帖子
	LikedSet(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Create(ctx context.Context, userID, postID uint) error {
	l := &model.Like{ID: uuid.New().String(), UserID: userID, PostID: postID}
	// 幂等：重复点赞不报错，唯一索引兜底并发
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&cnt).Error
	return cnt, err
}

func (r *likeRepository) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	res := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return res, nil
	}
	type row struct {
		PostID uint
		Cnt    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Select("post_id", "COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		res[rw.PostID] = rw.Cnt
	}
	return res, nil
}

func (r *likeRepository) LikedSet(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	res := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return res, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}
