package model

import "time"

// Like 点赞关系（user 赞 post）
type Like struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	UserID uint   `gorm:"index:idx_like_user;index:idx_like_pair,unique;not null"`
	PostID uint   `gorm:"not null;index:idx_like_post;index:idx_like_pair,unique"`
	// 复合唯一键，避免重复点赞
	// idx_like_pair = (user_id, post_id)
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Like) TableName() string { return "likes" }
