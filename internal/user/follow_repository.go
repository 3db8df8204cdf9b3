package user

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sociality/internal/dbmysql"
)

type FollowRepository interface {
	// Upsert inserts the edge, silently keeping the existing row on conflict.
	Upsert(ctx context.Context, followerID, followingID uint64) error
	// Delete is idempotent: removing an absent edge is not an error.
	Delete(ctx context.Context, followerID, followingID uint64) error
	Exists(ctx context.Context, followerID, followingID uint64) (bool, error)
	Followers(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.User, int64, error)
	Following(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.User, int64, error)
	// FollowingSet resolves which of the candidate ids the viewer follows, in
	// one query.
	FollowingSet(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Upsert(ctx context.Context, followerID, followingID uint64) error {
	edge := dbmysql.Follow{FollowerID: followerID, FollowingID: followingID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint64) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&dbmysql.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) Followers(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("following_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []dbmysql.User
	err = r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Joins("JOIN follows ON follows.follower_id = users.user_id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *followRepository) Following(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("follower_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []dbmysql.User
	err = r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Joins("JOIN follows ON follows.following_id = users.user_id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *followRepository) FollowingSet(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error) {
	set := make(map[uint64]bool)
	if viewerID == 0 || len(userIDs) == 0 {
		return set, nil
	}

	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Where("follower_id = ? AND following_id IN ?", viewerID, userIDs).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
