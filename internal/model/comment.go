package model

import "time"

// Comment 评论；不参与时间线排序，只做计数展示
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index:idx_comment_post;not null" json:"post_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Comment) TableName() string { return "comments" }
