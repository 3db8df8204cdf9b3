package dbmysql

import (
	"time"
)

// Follow is a directed edge: follower follows following. The unique pair
// index makes the follow upsert idempotent; self-follows are rejected in the
// service layer before the row is ever written.
type Follow struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;index:idx_follower_following,unique" json:"follower_id"`
	FollowingID uint64    `gorm:"column:following_id;not null;index:idx_follower_following,unique" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
