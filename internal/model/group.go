package model

import "time"

// Group 内容分组；slug 全局唯一，用于 URL
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Group) TableName() string { return "groups" }

// MaxGroupTitleLen 组标题长度上限
const MaxGroupTitleLen = 200
