package models

import (
	"time"
)

type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Summary   string    `gorm:"type:text;not null" json:"summary"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"size:50;not null;index" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，用于列表页填充
	CommentCount int `gorm:"-" json:"comment_count"`
}
