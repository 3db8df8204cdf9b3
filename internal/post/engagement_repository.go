package post

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sociality/internal/dbmysql"
)

// EngagementRepository covers likes and saves. Both rely on the unique
// (post_id, user_id) index for idempotency: inserting an existing pair does
// nothing, deleting an absent pair does nothing.
type EngagementRepository interface {
	LikeUpsert(ctx context.Context, postID, userID uint64) error
	LikeDelete(ctx context.Context, postID, userID uint64) error
	LikeCount(ctx context.Context, postID uint64) (int64, error)
	SaveUpsert(ctx context.Context, postID, userID uint64) error
	SaveDelete(ctx context.Context, postID, userID uint64) error
	// Likers pages the users who liked a post, most recent like first.
	Likers(ctx context.Context, postID uint64, offset, limit int) ([]dbmysql.User, int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) LikeUpsert(ctx context.Context, postID, userID uint64) error {
	like := dbmysql.Like{PostID: postID, UserID: userID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

func (r *engagementRepository) LikeDelete(ctx context.Context, postID, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&dbmysql.Like{}).Error
}

func (r *engagementRepository) LikeCount(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *engagementRepository) SaveUpsert(ctx context.Context, postID, userID uint64) error {
	save := dbmysql.Save{PostID: postID, UserID: userID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&save).Error
}

func (r *engagementRepository) SaveDelete(ctx context.Context, postID, userID uint64) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&dbmysql.Save{}).Error
}

func (r *engagementRepository) Likers(ctx context.Context, postID uint64, offset, limit int) ([]dbmysql.User, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("post_id = ?", postID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var users []dbmysql.User
	err = r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Joins("JOIN likes ON likes.user_id = users.user_id").
		Where("likes.post_id = ?", postID).
		Order("likes.created_at DESC").
		Order("likes.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
