package dbmysql

import (
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	UserID       uint64    `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:30;not null" json:"username"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Name         string    `gorm:"column:name;size:120" json:"name"`
	Phone        string    `gorm:"column:phone;size:25" json:"phone"`
	Bio          string    `gorm:"column:bio;size:280" json:"bio"`
	AvatarURL    string    `gorm:"column:avatar_url;size:500" json:"avatar_url"`
	Role         string    `gorm:"column:role;type:enum('USER','ADMIN');default:'USER'" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// UserStats are the aggregate counts rendered on profile payloads. Likes is
// the number of likes received across the user's posts.
type UserStats struct {
	Posts     int64 `json:"posts"`
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
	Likes     int64 `json:"likes"`
}
