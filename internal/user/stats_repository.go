package user

import (
	"context"

	"gorm.io/gorm"

	"sociality/internal/dbmysql"
)

type StatsRepository interface {
	// ForUsers computes post/follower/following/likes-received counts for the
	// whole id set in one grouped pass per table, so list rendering stays at a
	// fixed number of queries regardless of page size.
	ForUsers(ctx context.Context, userIDs []uint64) (map[uint64]dbmysql.UserStats, error)
	ForUser(ctx context.Context, userID uint64) (dbmysql.UserStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

type groupedCount struct {
	ID    uint64 `gorm:"column:id"`
	Count int64  `gorm:"column:n"`
}

func (r *statsRepository) ForUsers(ctx context.Context, userIDs []uint64) (map[uint64]dbmysql.UserStats, error) {
	stats := make(map[uint64]dbmysql.UserStats, len(userIDs))
	if len(userIDs) == 0 {
		return stats, nil
	}
	for _, id := range userIDs {
		stats[id] = dbmysql.UserStats{}
	}

	var rows []groupedCount

	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Select("author_id AS id, COUNT(*) AS n").
		Where("author_id IN ?", userIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		entry := stats[row.ID]
		entry.Posts = row.Count
		stats[row.ID] = entry
	}

	rows = rows[:0]
	err = r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Select("following_id AS id, COUNT(*) AS n").
		Where("following_id IN ?", userIDs).
		Group("following_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		entry := stats[row.ID]
		entry.Followers = row.Count
		stats[row.ID] = entry
	}

	rows = rows[:0]
	err = r.db.WithContext(ctx).
		Model(&dbmysql.Follow{}).
		Select("follower_id AS id, COUNT(*) AS n").
		Where("follower_id IN ?", userIDs).
		Group("follower_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		entry := stats[row.ID]
		entry.Following = row.Count
		stats[row.ID] = entry
	}

	rows = rows[:0]
	err = r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Select("posts.author_id AS id, COUNT(*) AS n").
		Joins("JOIN posts ON posts.post_id = likes.post_id").
		Where("posts.author_id IN ?", userIDs).
		Group("posts.author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		entry := stats[row.ID]
		entry.Likes = row.Count
		stats[row.ID] = entry
	}

	return stats, nil
}

func (r *statsRepository) ForUser(ctx context.Context, userID uint64) (dbmysql.UserStats, error) {
	stats, err := r.ForUsers(ctx, []uint64{userID})
	if err != nil {
		return dbmysql.UserStats{}, err
	}
	return stats[userID], nil
}
