package post

import (
	"context"

	"gorm.io/gorm"

	"sociality/internal/dbmysql"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *dbmysql.Comment) error
	ByID(ctx context.Context, commentID uint64) (*dbmysql.Comment, error)
	Delete(ctx context.Context, commentID uint64) error
	// ByPost pages a post's comments oldest first.
	ByPost(ctx context.Context, postID uint64, offset, limit int) ([]dbmysql.Comment, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *dbmysql.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	// reload for the User association the view needs
	return r.db.WithContext(ctx).
		Preload("User").
		Where("comment_id = ?", comment.CommentID).
		First(comment).Error
}

func (r *commentRepository) ByID(ctx context.Context, commentID uint64) (*dbmysql.Comment, error) {
	var comment dbmysql.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("comment_id = ?", commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID uint64) error {
	return r.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Delete(&dbmysql.Comment{}).Error
}

func (r *commentRepository) ByPost(ctx context.Context, postID uint64, offset, limit int) ([]dbmysql.Comment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Where("post_id = ?", postID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var comments []dbmysql.Comment
	err = r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("comment_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
