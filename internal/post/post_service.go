package post

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"sociality/internal/common"
	"sociality/internal/dbmysql"
)

// UserDirectory is what this package needs from the user domain: username
// resolution, batched stats and the viewer's outgoing-follow set. The user
// service satisfies it.
type UserDirectory interface {
	ByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	StatsFor(ctx context.Context, userIDs []uint64) (map[uint64]dbmysql.UserStats, error)
	FollowingSet(ctx context.Context, viewerID uint64, userIDs []uint64) (map[uint64]bool, error)
}

// LikeResult reports a like/unlike outcome with the recomputed count.
type LikeResult struct {
	Liked     bool
	LikeCount int64
}

// LikersPage is one page of a post's likers with their stats and the
// viewer's follow relation to each.
type LikersPage struct {
	Users        []dbmysql.User
	Stats        map[uint64]dbmysql.UserStats
	FollowingSet map[uint64]bool
	Total        int64
}

type PostService interface {
	Create(ctx context.Context, authorID uint64, caption, imageURL string) (*dbmysql.PostWithMeta, error)
	ByID(ctx context.Context, postID, viewerID uint64) (*dbmysql.PostWithMeta, error)
	Delete(ctx context.Context, postID, actorID uint64) error
	Feed(ctx context.Context, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error)
	// FeedAfter returns up to limit posts older than the cursor plus the next
	// cursor, nil when the feed is exhausted.
	FeedAfter(ctx context.Context, viewerID, cursor uint64, limit int) ([]dbmysql.PostWithMeta, *uint64, error)
	ByAuthorUsername(ctx context.Context, username string, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error)
	LikedByUsername(ctx context.Context, username string, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error)
	LikedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error)
	SavedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error)
	Like(ctx context.Context, postID, userID uint64) (*LikeResult, error)
	Unlike(ctx context.Context, postID, userID uint64) (*LikeResult, error)
	Save(ctx context.Context, postID, userID uint64) error
	Unsave(ctx context.Context, postID, userID uint64) error
	Comments(ctx context.Context, postID uint64, offset, limit int) ([]dbmysql.Comment, int64, error)
	AddComment(ctx context.Context, postID, userID uint64, body string) (*dbmysql.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, actorID uint64) error
	// DeleteCommentByID addresses the comment by id alone and derives its post.
	DeleteCommentByID(ctx context.Context, commentID, actorID uint64) error
	Likers(ctx context.Context, postID, viewerID uint64, offset, limit int) (*LikersPage, error)
}

type postService struct {
	posts       PostRepository
	comments    CommentRepository
	engagements EngagementRepository
	users       UserDirectory
}

func NewPostService(posts PostRepository, comments CommentRepository, engagements EngagementRepository, users UserDirectory) PostService {
	return &postService{posts: posts, comments: comments, engagements: engagements, users: users}
}

func (s *postService) Create(ctx context.Context, authorID uint64, caption, imageURL string) (*dbmysql.PostWithMeta, error) {
	caption = strings.TrimSpace(caption)
	if len(caption) > 2200 {
		return nil, common.NewError(common.CodeValidation, "Caption is too long")
	}
	if imageURL == "" {
		return nil, common.NewError(common.CodeValidation, "Image is required")
	}

	p := &dbmysql.Post{AuthorID: authorID, Caption: caption, ImageURL: imageURL}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.ByID(ctx, p.PostID, authorID)
}

func (s *postService) ByID(ctx context.Context, postID, viewerID uint64) (*dbmysql.PostWithMeta, error) {
	p, err := s.posts.ByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound("Post not found")
		}
		return nil, err
	}

	metas, err := s.posts.WithMeta(ctx, []dbmysql.Post{*p}, viewerID)
	if err != nil {
		return nil, err
	}
	return &metas[0], nil
}

func (s *postService) Delete(ctx context.Context, postID, actorID uint64) error {
	p, err := s.posts.ByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound("Post not found")
		}
		return err
	}
	if p.AuthorID != actorID {
		return common.ErrForbidden("You can only delete your own posts")
	}
	return s.posts.DeleteCascade(ctx, postID)
}

func (s *postService) Feed(ctx context.Context, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
	posts, total, err := s.posts.Feed(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	metas, err := s.posts.WithMeta(ctx, posts, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return metas, total, nil
}

func (s *postService) FeedAfter(ctx context.Context, viewerID, cursor uint64, limit int) ([]dbmysql.PostWithMeta, *uint64, error) {
	// one extra row decides whether another page exists
	posts, err := s.posts.FeedAfter(ctx, cursor, limit+1)
	if err != nil {
		return nil, nil, err
	}

	var next *uint64
	if len(posts) > limit {
		posts = posts[:limit]
		last := posts[len(posts)-1].PostID
		next = &last
	}

	metas, err := s.posts.WithMeta(ctx, posts, viewerID)
	if err != nil {
		return nil, nil, err
	}
	return metas, next, nil
}

func (s *postService) ByAuthorUsername(ctx context.Context, username string, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
	author, err := s.users.ByUsername(ctx, username)
	if err != nil {
		return nil, 0, err
	}

	posts, total, err := s.posts.ByAuthor(ctx, author.UserID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	metas, err := s.posts.WithMeta(ctx, posts, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return metas, total, nil
}

func (s *postService) LikedByUsername(ctx context.Context, username string, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
	target, err := s.users.ByUsername(ctx, username)
	if err != nil {
		return nil, 0, err
	}
	return s.likedBy(ctx, target.UserID, viewerID, offset, limit)
}

func (s *postService) LikedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
	return s.likedBy(ctx, userID, userID, offset, limit)
}

func (s *postService) likedBy(ctx context.Context, userID, viewerID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
	posts, total, err := s.posts.LikedBy(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	metas, err := s.posts.WithMeta(ctx, posts, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return metas, total, nil
}

func (s *postService) SavedBy(ctx context.Context, userID uint64, offset, limit int) ([]dbmysql.PostWithMeta, int64, error) {
	posts, total, err := s.posts.SavedBy(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	metas, err := s.posts.WithMeta(ctx, posts, userID)
	if err != nil {
		return nil, 0, err
	}
	return metas, total, nil
}

func (s *postService) Like(ctx context.Context, postID, userID uint64) (*LikeResult, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.engagements.LikeUpsert(ctx, postID, userID); err != nil {
		return nil, err
	}
	count, err := s.engagements.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: true, LikeCount: count}, nil
}

func (s *postService) Unlike(ctx context.Context, postID, userID uint64) (*LikeResult, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.engagements.LikeDelete(ctx, postID, userID); err != nil {
		return nil, err
	}
	count, err := s.engagements.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: false, LikeCount: count}, nil
}

func (s *postService) Save(ctx context.Context, postID, userID uint64) error {
	if err := s.ensurePost(ctx, postID); err != nil {
		return err
	}
	return s.engagements.SaveUpsert(ctx, postID, userID)
}

func (s *postService) Unsave(ctx context.Context, postID, userID uint64) error {
	if err := s.ensurePost(ctx, postID); err != nil {
		return err
	}
	return s.engagements.SaveDelete(ctx, postID, userID)
}

func (s *postService) ensurePost(ctx context.Context, postID uint64) error {
	_, err := s.posts.ByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound("Post not found")
	}
	return err
}

func (s *postService) Comments(ctx context.Context, postID uint64, offset, limit int) ([]dbmysql.Comment, int64, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, 0, err
	}
	return s.comments.ByPost(ctx, postID, offset, limit)
}

func (s *postService) AddComment(ctx context.Context, postID, userID uint64, body string) (*dbmysql.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, common.NewError(common.CodeValidation, "Comment cannot be empty")
	}
	if len(body) > 2000 {
		return nil, common.NewError(common.CodeValidation, "Comment is too long")
	}
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	c := &dbmysql.Comment{PostID: postID, UserID: userID, Body: body}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *postService) DeleteComment(ctx context.Context, postID, commentID, actorID uint64) error {
	c, err := s.commentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.PostID != postID {
		return common.ErrNotFound("Comment not found")
	}
	return s.deleteComment(ctx, c, actorID)
}

func (s *postService) DeleteCommentByID(ctx context.Context, commentID, actorID uint64) error {
	c, err := s.commentByID(ctx, commentID)
	if err != nil {
		return err
	}
	return s.deleteComment(ctx, c, actorID)
}

func (s *postService) commentByID(ctx context.Context, commentID uint64) (*dbmysql.Comment, error) {
	c, err := s.comments.ByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound("Comment not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *postService) deleteComment(ctx context.Context, c *dbmysql.Comment, actorID uint64) error {
	p, err := s.posts.ByID(ctx, c.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound("Post not found")
		}
		return err
	}

	// the comment's author and the post's author may both remove it
	if c.UserID != actorID && p.AuthorID != actorID {
		return common.ErrForbidden("You cannot delete this comment")
	}
	return s.comments.Delete(ctx, c.CommentID)
}

func (s *postService) Likers(ctx context.Context, postID, viewerID uint64, offset, limit int) (*LikersPage, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	users, total, err := s.engagements.Likers(ctx, postID, offset, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}
	stats, err := s.users.StatsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	followingSet, err := s.users.FollowingSet(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	return &LikersPage{Users: users, Stats: stats, FollowingSet: followingSet, Total: total}, nil
}
