package post

import (
	"context"

	"gorm.io/gorm"

	"sociality/internal/dbmysql"
)

type PostRepository interface {
	Create(ctx context.Context, post *dbmysql.Post) error
	// ByID loads the post with its author preloaded.
	ByID(ctx context.Context, postID uint64) (*dbmysql.Post, error)
	// DeleteCascade removes the post and its comments, likes and saves in one
	// transaction.
	DeleteCascade(ctx context.Context, postID uint64) error
	// Feed pages all posts newest first.
	Feed(ctx context.Context, offset, limit int) ([]dbmysql.Post, int64, error)
	// FeedAfter pages by id cursor: posts with post_id < cursor, newest first.
	// cursor == 0 means start from the top. Fetches up to limit rows.
	FeedAfter(ctx context.Context, cursor uint64, limit int) ([]dbmysql.Post, error)
	ByAuthor(ctx context.Context, authorID uint64, offset, limit int) ([]dbmysql.Post, int64, error)
	// LikedBy pages posts a user has liked, most recent like first.
	LikedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.Post, int64, error)
	// SavedBy pages posts a user has saved, most recent save first.
	SavedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.Post, int64, error)
	// WithMeta hydrates like/comment counts and the viewer's liked/saved flags
	// for the whole slice in a fixed number of grouped queries.
	WithMeta(ctx context.Context, posts []dbmysql.Post, viewerID uint64) ([]dbmysql.PostWithMeta, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) ByID(ctx context.Context, postID uint64) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) DeleteCascade(ctx context.Context, postID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&dbmysql.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&dbmysql.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&dbmysql.Save{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&dbmysql.Post{}).Error
	})
}

func (r *postRepository) Feed(ctx context.Context, offset, limit int) ([]dbmysql.Post, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&dbmysql.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Order("post_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) FeedAfter(ctx context.Context, cursor uint64, limit int) ([]dbmysql.Post, error) {
	q := r.db.WithContext(ctx).
		Preload("Author").
		Order("post_id DESC").
		Limit(limit)
	if cursor != 0 {
		q = q.Where("post_id < ?", cursor)
	}

	var posts []dbmysql.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ByAuthor(ctx context.Context, authorID uint64, offset, limit int) ([]dbmysql.Post, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Where("author_id = ?", authorID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var posts []dbmysql.Post
	err = r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Order("post_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) LikedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.Post, int64, error) {
	return r.byEngagement(ctx, "likes", userID, offset, limit)
}

func (r *postRepository) SavedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.Post, int64, error) {
	return r.byEngagement(ctx, "saves", userID, offset, limit)
}

func (r *postRepository) byEngagement(ctx context.Context, table string, userID uint64, offset, limit int) ([]dbmysql.Post, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var posts []dbmysql.Post
	err = r.db.WithContext(ctx).
		Model(&dbmysql.Post{}).
		Preload("Author").
		Joins("JOIN "+table+" ON "+table+".post_id = posts.post_id").
		Where(table+".user_id = ?", userID).
		Order(table + ".created_at DESC").
		Order(table + ".id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

type postCount struct {
	PostID uint64 `gorm:"column:id"`
	Count  int64  `gorm:"column:n"`
}

func (r *postRepository) WithMeta(ctx context.Context, posts []dbmysql.Post, viewerID uint64) ([]dbmysql.PostWithMeta, error) {
	out := make([]dbmysql.PostWithMeta, 0, len(posts))
	if len(posts) == 0 {
		return out, nil
	}

	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
	}

	likeCounts, err := r.countByPost(ctx, &dbmysql.Like{}, ids)
	if err != nil {
		return nil, err
	}
	commentCounts, err := r.countByPost(ctx, &dbmysql.Comment{}, ids)
	if err != nil {
		return nil, err
	}

	likedSet := map[uint64]bool{}
	savedSet := map[uint64]bool{}
	if viewerID != 0 {
		if likedSet, err = r.viewerSet(ctx, &dbmysql.Like{}, viewerID, ids); err != nil {
			return nil, err
		}
		if savedSet, err = r.viewerSet(ctx, &dbmysql.Save{}, viewerID, ids); err != nil {
			return nil, err
		}
	}

	for _, p := range posts {
		out = append(out, dbmysql.PostWithMeta{
			Post:         p,
			LikeCount:    likeCounts[p.PostID],
			CommentCount: commentCounts[p.PostID],
			Liked:        likedSet[p.PostID],
			Saved:        savedSet[p.PostID],
		})
	}
	return out, nil
}

func (r *postRepository) countByPost(ctx context.Context, model interface{}, postIDs []uint64) (map[uint64]int64, error) {
	var rows []postCount
	err := r.db.WithContext(ctx).
		Model(model).
		Select("post_id AS id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (r *postRepository) viewerSet(ctx context.Context, model interface{}, viewerID uint64, postIDs []uint64) (map[uint64]bool, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(model).
		Where("user_id = ? AND post_id IN ?", viewerID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
