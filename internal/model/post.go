package model

import "time"

// Post 内容主体；ID 自增，作时间线排序的二级键
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AuthorID uint   `gorm:"index:idx_post_author;not null" json:"author_id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	// 组可空；删组时置空，不级联删帖
	GroupID *uint  `gorm:"index:idx_post_group" json:"group_id,omitempty"`
	Image   string `gorm:"type:varchar(255)" json:"image,omitempty"`
	// 软删除/审核标记；false 的帖子对外不可见但保留在库里
	IsValid   bool      `gorm:"not null;default:true;index:idx_post_valid_created" json:"-"`
	CreatedAt time.Time `gorm:"index:idx_post_valid_created" json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Author *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Group  *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
}

func (Post) TableName() string { return "posts" }

// MaxPostTextLen 帖子正文长度上限（按 rune 计）
const MaxPostTextLen = 10000
