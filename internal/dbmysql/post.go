package dbmysql

import (
	"time"
)

type Post struct {
	PostID    uint64    `gorm:"primaryKey;column:post_id;autoIncrement" json:"post_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index" json:"author_id"`
	Caption   string    `gorm:"column:caption;size:2200" json:"caption"`
	ImageURL  string    `gorm:"column:image_url;size:500;not null" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author User `gorm:"foreignKey:AuthorID;references:UserID" json:"author"`
}

// PostWithMeta is a post hydrated with engagement counts and the viewer's own
// like/save flags. Liked/Saved are only meaningful when hydrated for an
// authenticated viewer.
type PostWithMeta struct {
	Post
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	Liked        bool  `json:"liked"`
	Saved        bool  `json:"saved"`
}
