package dbmysql

import (
	"time"
)

// Like and Save both carry a unique (post_id, user_id) index; the storage
// engine's conflict handling is what makes double-taps idempotent.

type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_like_post_user,unique" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_like_post_user,unique" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

type Save struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_save_post_user,unique" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_save_post_user,unique" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
