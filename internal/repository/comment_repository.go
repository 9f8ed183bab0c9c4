package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/timeline-service/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]*model.Comment, error)
	CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (r *commentRepository) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
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
		Model(&model.Comment{}).
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
