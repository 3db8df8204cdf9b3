package dbmysql

import (
	"time"
)

type Comment struct {
	CommentID uint64    `gorm:"primaryKey;column:comment_id;autoIncrement" json:"comment_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"user_id"`
	Body      string    `gorm:"column:body;size:2000;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:UserID" json:"user"`
}
