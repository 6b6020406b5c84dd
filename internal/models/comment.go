package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	User      string    `gorm:"size:50;default:Anonymous" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	Article   Article   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"article"`
	CreatedAt time.Time `json:"created_at"`
}
