package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/timeline-service/internal/model"
)

// PostFilter 时间线候选集筛选条件；零值表示全量
type PostFilter struct {
	GroupID   *uint
	AuthorID  *uint
	AuthorIDs []uint // 关注流：被关注作者的并集（nil 表示不启用）
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// GetByID / GetByAuthorAndID 只返回可见（is_valid）的帖子
	GetByID(ctx context.Context, postID uint) (*model.Post, error)
	GetByAuthorAndID(ctx context.Context, authorID, postID uint) (*model.Post, error)
	// Update 只写正文/组/图片字段，created_at 不动，排序位置保持
	Update(ctx context.Context, post *model.Post) error
	SetValid(ctx context.Context, postID uint, valid bool) error
	// List 返回一页帖子和总数；排序固定 created_at DESC, id DESC
	List(ctx context.Context, filter PostFilter, offset, limit int) ([]*model.Post, int64, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

// visible 可见性谓词集中在这一处；所有读路径都必须经过它，
// 任何视图不得自行重写 is_valid 过滤
func visible(db *gorm.DB) *gorm.DB {
	return db.Where("posts.is_valid = ?", true)
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, postID uint) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Scopes(visible).
		Where("posts.id = ?", postID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) GetByAuthorAndID(ctx context.Context, authorID, postID uint) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Scopes(visible).
		Preload("Author").
		Preload("Group").
		Where("posts.id = ? AND posts.author_id = ?", postID, authorID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("text", "group_id", "image").
		Updates(map[string]any{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (r *postRepository) SetValid(ctx context.Context, postID uint, valid bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", postID).
		Update("is_valid", valid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter, offset, limit int) ([]*model.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Post{}).Scopes(visible)
	if filter.GroupID != nil {
		q = q.Where("posts.group_id = ?", *filter.GroupID)
	}
	if filter.AuthorID != nil {
		q = q.Where("posts.author_id = ?", *filter.AuthorID)
	}
	if filter.AuthorIDs != nil {
		q = q.Where("posts.author_id IN ?", filter.AuthorIDs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := q.Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Scopes(visible).
		Where("posts.author_id = ?", authorID).
		Count(&cnt).Error
	return cnt, err
}
